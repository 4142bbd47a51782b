// brokenio is a wrapper around an io.Reader which goes wrong on purpose.
// Typical use: You have a reader from a file, a compressed source or an
// http source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything then
// functions as before, until the reader is told to break.
// 19 Oct 2026 made deterministic, so tests of the alignment readers
// know exactly where a read will fail.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what a broken read returns.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// A Reader passes reads through to the wrapped reader, but fails once a
// given number of bytes have gone through, or looks like an empty file.
type Reader struct {
	rdrOrig   io.Reader // Wrapped reader
	failAfter int       // fail after this many bytes, if >= 0
	zeroFile  bool      // return EOF on the first read
	nCalled   int
	nByte     int
}

// NewReader returns a new Reader - a wrapper around the old one.
// It does not fail until told to.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter makes reads fail with ErrBroken once n bytes have been
// delivered. A negative n switches failures off.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetZeroFile makes the first read return nothing, like a zero length
// file, which is a rather common occurrence.
func (r *Reader) SetZeroFile(z bool) { r.zeroFile = z }

// NCalled is the number of calls to Read.
func (r *Reader) NCalled() int { return r.nCalled }

// NByte is the number of bytes passed through.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	r.nCalled++
	if len(p) == 0 {
		return 0, nil
	}
	if r.zeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}
