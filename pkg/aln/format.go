// 19 Oct 2026

package aln

import "strings"

// Format says which grammar is used to read or write an alignment.
// There is no guessing from the contents of a file. The caller always
// says which one it wants.
type Format byte

const (
	NoFormat Format = iota // zero value, not usable
	Phylip                 // counts on the first line, one sequence per line
	Fasta                  // ">" name line, then residue lines
)

// String gives the name used on the command line and in config files.
func (f Format) String() string {
	switch f {
	case Phylip:
		return "phylip"
	case Fasta:
		return "fasta"
	}
	return "unknown"
}

// Valid is true for formats we can read and write.
func (f Format) Valid() bool { return f == Phylip || f == Fasta }

// ParseFormat turns a name like "phy" or "FASTA" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phylip", "phy":
		return Phylip, nil
	case "fasta", "fas", "fa":
		return Fasta, nil
	}
	return NoFormat, &UnsupportedFormatError{Name: s}
}
