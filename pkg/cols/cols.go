// 19 Oct 2026

// Package cols turns a list of sites, as a person would write it, into
// zero based column numbers for aln.Subset.
//
// Sites are numbered from 1. Items are separated by commas or white
// space and can be
//
//	7        a single site
//	1-100    sites 1 to 100, inclusive
//	2-100\3  every third site, starting at 2 (codon position 2)
//
// Order and repeats are kept.
package cols

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Error is an item in a column list we could not understand.
type Error struct {
	Item string
	Desc string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bad column list item %q: %s", e.Item, e.Desc)
}

func isSep(r rune) bool { return r == ',' || r == ';' || unicode.IsSpace(r) }

// site converts a one based site number.
func site(item, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &Error{Item: item, Desc: fmt.Sprintf("%q is not a number", s)}
	}
	if n < 1 {
		return 0, &Error{Item: item, Desc: "sites are numbered from 1"}
	}
	return n, nil
}

// parseItem appends the columns for one item to dst.
func parseItem(dst []int, item string) ([]int, error) {
	rng, step := item, 1
	if i := strings.IndexByte(item, '\\'); i != -1 {
		rng = item[:i]
		n, err := strconv.Atoi(item[i+1:])
		if err != nil || n < 1 {
			return nil, &Error{Item: item, Desc: "step must be a positive number"}
		}
		step = n
	}
	first, last, isRange := strings.Cut(rng, "-")
	start, err := site(item, first)
	if err != nil {
		return nil, err
	}
	end := start
	if isRange {
		if end, err = site(item, last); err != nil {
			return nil, err
		}
	} else if step != 1 {
		return nil, &Error{Item: item, Desc: "a step needs a range"}
	}
	if end < start {
		return nil, &Error{Item: item, Desc: "range runs backwards"}
	}
	for s := start; s <= end; s += step {
		dst = append(dst, s-1)
	}
	return dst, nil
}

// Parse converts a column list like "1-10\3, 12 15-20" to zero based
// columns. An empty list is an error.
func Parse(s string) ([]int, error) {
	items := strings.FieldsFunc(s, isSep)
	if len(items) == 0 {
		return nil, &Error{Item: s, Desc: "no sites given"}
	}
	var columns []int
	for _, item := range items {
		var err error
		if columns, err = parseItem(columns, item); err != nil {
			return nil, err
		}
	}
	return columns, nil
}
