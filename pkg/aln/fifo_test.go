//go:build unix

// 19 Oct 2026

package aln_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	. "github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadFifo reads from a named pipe, which has no size and cannot be
// mapped, as with process substitution in a shell.
func TestReadFifo(t *testing.T) {
	text := "2 4\ndog GATC\ncat GATT\n"
	want, err := FromText(text, Phylip)
	require.NoError(t, err)
	for _, data := range [][]byte{[]byte(text), gzipped(t, text)} {
		fifo := filepath.Join(t.TempDir(), "aln.fifo")
		require.NoError(t, syscall.Mkfifo(fifo, 0600))
		errc := make(chan error, 1)
		go func() { errc <- os.WriteFile(fifo, data, 0600) }()
		got, err := ReadFile(fifo, Phylip)
		require.NoError(t, err)
		require.NoError(t, <-errc)
		assert.True(t, want.SameAs(got))
		assert.Equal(t, []string{"dog", "cat"}, got.Names())
	}
}
