// 19 Oct 2026

package aln

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/andrew-torda/seqaln/pkg/common"
	"github.com/edsrzf/mmap-go"
)

// withMapped maps a file read-only and hands the bytes to fn. The
// mapping and the file are released before returning, so fn must not
// keep any slice of the bytes. Strings made from them are copies, so
// they are fine. Only regular files are mapped. Pipes, fifos and
// devices are read to the end instead. A zero length file cannot be
// mapped, so fn gets nil.
func withMapped(fname string, fn func([]byte) error) (err error) {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		text, err := io.ReadAll(fp)
		if err != nil {
			return fmt.Errorf("reading %s: %w", fname, err)
		}
		return fn(text)
	}
	if fi.Size() == 0 {
		return fn(nil)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer func() {
		if e := mm.Unmap(); e != nil && err == nil {
			err = e
		}
	}()
	return fn(mm)
}

// ReadFile reads an alignment from a file in format f. The checks come
// in the order: does the file exist, syntax, phylip header, then
// repeated names and sequence lengths. Compressed files are
// decompressed.
func ReadFile(fname string, f Format) (*Alignment, error) {
	a := new(Alignment)
	if err := a.Load(fname, f); err != nil {
		return nil, err
	}
	return a, nil
}

// Load is like ReadFile, but replaces the contents of a. If there is an
// error, a is left as it was.
func (a *Alignment) Load(fname string, f Format) error {
	if _, err := os.Stat(fname); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Path: fname, Err: err}
		}
		return err
	}
	logger.Printf("reading alignment file %s", fname)
	var b *Alignment
	err := withMapped(fname, func(text []byte) error {
		text, err := unzipMaybe(text)
		if err != nil {
			return err
		}
		recs, err := Parse(text, f)
		if err != nil {
			return err
		}
		b, err = FromRecords(recs)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	*a = *b
	return nil
}

// Read reads an alignment in format f from r, which might be standard
// input or a network stream. Compressed input is decompressed.
func Read(r io.Reader, f Format) (*Alignment, error) {
	text, err := readAllMaybeZ(r)
	if err != nil {
		return nil, err
	}
	recs, err := Parse(text, f)
	if err != nil {
		return nil, err
	}
	return FromRecords(recs)
}

// ReadPath is ReadFile, except an empty name or "-" means read from
// stdin, which is usually, but not always, os.Stdin.
func ReadPath(fname string, stdin io.Reader, f Format) (*Alignment, error) {
	if common.IsStdio(fname) {
		return Read(stdin, f)
	}
	return ReadFile(fname, f)
}
