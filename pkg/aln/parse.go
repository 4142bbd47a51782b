// 19 Oct 2026

package aln

import "sync"

// Record is one name and sequence, as it came from a file.
type Record struct {
	Name string
	Seq  string
}

type grammar struct {
	start stateFn
}

// The grammars are set up once, on first use, and never changed
// afterwards, so one table serves every call to Parse.
var (
	grammarOnce sync.Once
	grammars    map[Format]grammar
)

func grammarTable() map[Format]grammar {
	grammarOnce.Do(func() {
		grammars = map[Format]grammar{
			Phylip: {start: phyHeader},
			Fasta:  {start: fasStart},
		}
	})
	return grammars
}

// Parse runs the grammar for format f over the whole of text and
// returns the records in the order they were found.
// If there was a phylip header, the number of records and the length
// of the first sequence are checked against it. Nothing else is
// checked here. Repeated names and different lengths are left to
// FromRecords.
func Parse(text []byte, f Format) ([]Record, error) {
	g, ok := grammarTable()[f]
	if !ok {
		return nil, &UnsupportedFormatError{Name: f.String()}
	}
	l := newLexer(text)
	if err := l.run(g.start); err != nil {
		return nil, err
	}
	if h := l.hdr; h != nil { // Not all formats have a header
		if h.nSpecies != len(l.recs) {
			return nil, &HeaderCountError{Declared: h.nSpecies, Found: len(l.recs)}
		}
		if first := l.recs[0]; h.seqLen != len(first.Seq) {
			return nil, &HeaderLenError{Declared: h.seqLen, Found: len(first.Seq), Name: first.Name}
		}
	}
	return l.recs, nil
}
