// 29 April 2020
// 19 Oct 2026 works on checked alignments. The columns to keep are
// handed to aln.Subset instead of cutting sequences in place.

// Package squash removes columns from a multiple sequence alignment
// where some reference sequence has a gap.
package squash

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/andrew-torda/seqaln/pkg/common"
)

// FindRef returns the name of the reference sequence. If refstring is
// a number, it is the position of the sequence, counting from 1.
// Otherwise, an exact name match wins and after that the first name
// containing refstring. We remove any ">", space or tab at the start.
func FindRef(a *aln.Alignment, refstring string) (string, error) {
	names := a.Names()
	s := strings.TrimLeft(refstring, " >\t")
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(names) {
			return "", fmt.Errorf("reference number %d, but there are %d sequences", n, len(names))
		}
		return names[n-1], nil
	}
	if _, ok := a.Seq(s); ok {
		return s, nil
	}
	for _, name := range names {
		if strings.Contains(name, s) {
			return name, nil
		}
	}
	return "", fmt.Errorf("could not find %q amongst sequences", refstring)
}

// Columns returns the zero based columns where ref is not a gap.
func Columns(ref string) []int {
	cols := make([]int, 0, len(ref))
	for i := 0; i < len(ref); i++ {
		if ref[i] != common.GapChar {
			cols = append(cols, i)
		}
	}
	return cols
}

// Squash returns a new alignment without the columns that are gaps in
// the reference sequence.
func Squash(a *aln.Alignment, refstring string) (*aln.Alignment, error) {
	name, err := FindRef(a, refstring)
	if err != nil {
		return nil, err
	}
	ref, _ := a.Seq(name)
	return aln.Subset(a, Columns(ref))
}

// MyMain is the top level main, after parsing the command line.
// An empty infile or outfile means reading from rdr or writing to wrtr.
func MyMain(rdr io.Reader, wrtr io.Writer, refstring, infile, outfile string, f aln.Format) error {
	a, err := aln.ReadPath(infile, rdr, f)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	b, err := Squash(a, refstring)
	if err != nil {
		return err
	}
	if err := b.WritePath(outfile, wrtr, f); err != nil {
		if common.IsStdio(outfile) {
			outfile = "standard output"
		}
		return fmt.Errorf("writing to %s: %w", outfile, err)
	}
	return nil
}
