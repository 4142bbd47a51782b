// 19 Oct 2026

// Package aln reads, checks, subsets and writes multiple sequence
// alignments in phylip and fasta format.
//
// An Alignment is a set of named sequences, all the same length.
// Names are unique. Once built, an Alignment is not changed. Anything
// derived from it, like a subset of columns, is a new Alignment.
// The order of the species is the order they were first seen, so
// reading and writing a file keeps its order.
package aln

import (
	"fmt"
	"maps"
	"slices"
)

// Alignment is the export type. Build one with FromRecords, FromText,
// ReadFile or Subset.
type Alignment struct {
	names   []string          // species in the order first seen
	species map[string]string // species name to sequence
	seqLen  int
}

// FromRecords builds an alignment from parser output.
// It fails on the first repeated name or the first sequence whose
// length differs from the first sequence.
func FromRecords(recs []Record) (*Alignment, error) {
	if len(recs) == 0 {
		return nil, ErrNoSpecies
	}
	a := &Alignment{
		names:   make([]string, 0, len(recs)),
		species: make(map[string]string, len(recs)),
		seqLen:  len(recs[0].Seq),
	}
	for _, r := range recs {
		if _, ok := a.species[r.Name]; ok {
			return nil, &DupSpeciesError{Name: r.Name}
		}
		if len(r.Seq) != a.seqLen {
			return nil, &SeqLenError{Name: r.Name, Len: len(r.Seq), Want: a.seqLen}
		}
		a.species[r.Name] = r.Seq
		a.names = append(a.names, r.Name)
	}
	logger.Printf("found %d species with sequence length %d", len(a.names), a.seqLen)
	return a, nil
}

// FromText parses text in format f and builds an alignment.
// Useful for testing and for alignments that do not live in files.
func FromText(text string, f Format) (*Alignment, error) {
	recs, err := Parse([]byte(text), f)
	if err != nil {
		return nil, err
	}
	return FromRecords(recs)
}

// Len is the number of sites (columns).
func (a *Alignment) Len() int { return a.seqLen }

// NSpecies is the number of sequences.
func (a *Alignment) NSpecies() int { return len(a.names) }

// Names returns a copy of the species names, in order.
func (a *Alignment) Names() []string { return slices.Clone(a.names) }

// Seq returns the sequence for a species.
func (a *Alignment) Seq(name string) (string, bool) {
	s, ok := a.species[name]
	return s, ok
}

// SameAs is true if both alignments have the same length and the same
// species with the same sequences. Order does not matter.
func (a *Alignment) SameAs(b *Alignment) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.seqLen == b.seqLen && maps.Equal(a.species, b.species)
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment(%d species, %d sites)", len(a.names), a.seqLen)
}
