// 19 Oct 2026
// Errors from reading, checking, subsetting and writing alignments.
// Each kind of failure has its own type, so callers can pick them
// apart with errors.As. They all carry enough to tell a user which
// name, number or line was wrong.

package aln

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const maxMsgLen = 70

var (
	ErrNoSpecies   = errors.New("alignment has no sequences")
	ErrNoColumns   = errors.New("no columns given for subset")
	ErrEmptySubset = errors.New("subset of alignment has no species")
)

// SyntaxError is returned when a grammar could not eat its input.
// Line and Col count from 1.
type SyntaxError struct {
	Line   int
	Col    int
	Desc   string
	inline string // The line that provoked the error
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

// printable replaces control characters, so a binary file does not
// send rubbish to the terminal.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || unicode.IsPrint(r) {
			return r
		}
		return '?'
	}, s)
}

func (e *SyntaxError) Error() string {
	errmsg := "alignment syntax error, line " + strconv.Itoa(e.Line) +
		" col " + strconv.Itoa(e.Col) + ": " + e.Desc
	if e.inline != "" {
		errmsg += "\nLine starting with\n" + printable(firstPart(e.inline))
	}
	return errmsg
}

// NameError means a species name cannot be written in a format so that
// it would be read back the same.
type NameError struct {
	Name   string
	Format Format
	Desc   string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("cannot write species name %q in %s format: %s", e.Name, e.Format, e.Desc)
}

// HeaderCountError means the phylip header promised a different number
// of species to what was in the file.
type HeaderCountError struct {
	Declared int
	Found    int
}

func (e *HeaderCountError) Error() string {
	return fmt.Sprintf("header says %d species, but found %d sequences in file",
		e.Declared, e.Found)
}

// HeaderLenError means the phylip header's sequence length is not the
// length of the first sequence.
type HeaderLenError struct {
	Declared int
	Found    int
	Name     string // first sequence
}

func (e *HeaderLenError) Error() string {
	return fmt.Sprintf("header says sequence length %d, but %q has length %d",
		e.Declared, e.Name, e.Found)
}

// DupSpeciesError is a name seen twice.
type DupSpeciesError struct{ Name string }

func (e *DupSpeciesError) Error() string {
	return fmt.Sprintf("species name %q is repeated in alignment", e.Name)
}

// SeqLenError is a sequence whose length is not that of the first one.
type SeqLenError struct {
	Name string
	Len  int
	Want int
}

func (e *SeqLenError) Error() string {
	return fmt.Sprintf("sequence %q has length %d, but previous sequences have length %d",
		e.Name, e.Len, e.Want)
}

// NotFoundError is an alignment file that is not there.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find alignment file %q", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// UnsupportedFormatError is a format name or value we do not know.
type UnsupportedFormatError struct{ Name string }

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported alignment format %q, want phylip or fasta", e.Name)
}

// ColumnRangeError is a subset column outside the alignment.
type ColumnRangeError struct {
	Col int // zero based
	Len int
}

func (e *ColumnRangeError) Error() string {
	return fmt.Sprintf("column %d (from 0) is asked for, but the alignment only has %d sites",
		e.Col, e.Len)
}
