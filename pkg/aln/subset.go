// 19 Oct 2026

package aln

import "slices"

// Subset builds a new alignment from some columns of src. Columns are
// zero based. They can come in any order and can be repeated, so a
// partition can reorder sites. src is not touched.
func Subset(src *Alignment, columns []int) (*Alignment, error) {
	if src == nil || len(src.names) == 0 {
		return nil, ErrEmptySubset
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if cmax := slices.Max(columns); cmax >= src.seqLen {
		return nil, &ColumnRangeError{Col: cmax, Len: src.seqLen}
	}
	if cmin := slices.Min(columns); cmin < 0 {
		return nil, &ColumnRangeError{Col: cmin, Len: src.seqLen}
	}

	dst := &Alignment{
		names:   slices.Clone(src.names),
		species: make(map[string]string, len(src.names)),
		seqLen:  len(columns),
	}
	buf := make([]byte, len(columns))
	for _, name := range src.names {
		old := src.species[name]
		for i, c := range columns {
			buf[i] = old[c]
		}
		dst.species[name] = string(buf)
	}
	return dst, nil
}
