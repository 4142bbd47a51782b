// 19 Oct 2026

package aln

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/seqaln/pkg/common"
)

const (
	maxPhyNameWrt = 99     // names are cut to this on phylip output
	phySep        = "    " // between name and sequence on phylip output
)

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// checkNames makes sure every name will survive being written in format
// f and read back. Phylip names are cut, so they must still be different
// afterwards.
func (a *Alignment) checkNames(f Format) error {
	seen := make(map[string]bool, len(a.names))
	for _, name := range a.names {
		switch f {
		case Phylip:
			cut := trimStr(name, maxPhyNameWrt)
			if cut == "" {
				return &NameError{Name: name, Format: f, Desc: "empty name"}
			}
			for i := 0; i < len(cut); i++ {
				if !nameSet[cut[i]] {
					return &NameError{Name: name, Format: f,
						Desc: fmt.Sprintf("bad character %q", cut[i])}
				}
			}
			if seen[cut] {
				return &NameError{Name: name, Format: f,
					Desc: fmt.Sprintf("same as another name after cutting to %d characters", maxPhyNameWrt)}
			}
			seen[cut] = true
		case Fasta:
			if strings.Contains(name, "\n") || strings.HasSuffix(name, "\r") {
				return &NameError{Name: name, Format: f, Desc: "line break in name"}
			}
		}
	}
	return nil
}

// Write writes the alignment in format f. Species come out in the
// order they were read. Fasta sequences are written on one line.
// Names which could not be read back are an error and nothing is written.
func (a *Alignment) Write(w io.Writer, f Format) error {
	if err := a.checkNames(f); err != nil {
		return err
	}
	bw := bufio.NewWriter(w) // errors stick, so only check at Flush
	switch f {
	case Phylip:
		// we use a version of phylip which can have longer names, up to 100
		fmt.Fprintf(bw, "%d %d\n", len(a.names), a.seqLen)
		for _, name := range a.names {
			bw.WriteString(trimStr(name, maxPhyNameWrt))
			bw.WriteString(phySep)
			bw.WriteString(a.species[name])
			bw.WriteByte(nl)
		}
	case Fasta:
		for _, name := range a.names {
			bw.WriteByte(cmmtChar)
			bw.WriteString(name)
			bw.WriteByte(nl)
			bw.WriteString(a.species[name])
			bw.WriteByte(nl)
		}
	default:
		return &UnsupportedFormatError{Name: f.String()}
	}
	return bw.Flush()
}

// WriteFile writes the alignment to a new file. An unknown format is
// caught before the file is created.
func (a *Alignment) WriteFile(fname string, f Format) (err error) {
	if !f.Valid() {
		return &UnsupportedFormatError{Name: f.String()}
	}
	if err := a.checkNames(f); err != nil {
		return err
	}
	logger.Printf("writing %s file %s", f, fname)
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating alignment file: %w", err)
	}
	defer func() {
		if e := fp.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return a.Write(fp, f)
}

// WritePath is WriteFile, except an empty name or "-" means write to
// stdout.
func (a *Alignment) WritePath(fname string, stdout io.Writer, f Format) error {
	if common.IsStdio(fname) {
		return a.Write(stdout, f)
	}
	return a.WriteFile(fname, f)
}
