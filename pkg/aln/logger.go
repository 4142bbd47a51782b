// 19 Oct 2026

package aln

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "", 0)

// SetLogger sends messages about files read and written to l.
// nil switches them off again, which is the default.
// Call it before any reading or writing starts.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
