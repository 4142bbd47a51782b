// 19 Oct 2026
// Alignments are often stored compressed. These look at the first
// bytes and, if they see the gzip magic number, put a decompressor in
// front of the data. Otherwise the data is passed back as it came.

package aln

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

// unzipMaybe is for data that is already in memory, like a mapped file.
func unzipMaybe(b []byte) ([]byte, error) {
	if !bytes.HasPrefix(b, gzMagic) {
		return b, nil
	}
	zrdr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("opening compressed alignment: %w", err)
	}
	defer zrdr.Close()
	out, err := io.ReadAll(zrdr)
	if err != nil {
		return nil, fmt.Errorf("decompressing alignment: %w", err)
	}
	return out, nil
}

// readAllMaybeZ reads a stream to the end, decompressing if need be.
func readAllMaybeZ(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzMagic))
	switch {
	case err == io.EOF: // shorter than the magic number, and already finished
		return bytes.Clone(magic), nil
	case err != nil:
		return nil, err
	case !bytes.Equal(magic, gzMagic):
		return io.ReadAll(br)
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("opening compressed alignment: %w", err)
	}
	defer zrdr.Close()
	out, err := io.ReadAll(zrdr)
	if err != nil {
		return nil, fmt.Errorf("decompressing alignment: %w", err)
	}
	return out, nil
}
