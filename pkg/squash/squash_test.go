// 29 Apr 2020

package squash_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/andrew-torda/seqaln/pkg/common"
	. "github.com/andrew-torda/seqaln/pkg/squash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seqstring string = `>s1
ABCD
> s2
-EFG
> s3
-HIJ`

func ExampleMyMain() {
	fname, err := common.WrtTemp(seqstring)
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(fname)
	if err := MyMain(os.Stdin, os.Stdout, "s2", fname, "", aln.Fasta); err != nil {
		log.Fatal("broke running squash main ", err)
	}
	// Output:
	//>s1
	//BCD
	//> s2
	//EFG
	//> s3
	//HIJ
}

func TestWithOutput(t *testing.T) {
	fname, err := common.WrtTemp(seqstring)
	require.NoError(t, err)
	defer os.Remove(fname)
	outfname := filepath.Join(t.TempDir(), "squashed.fa")
	require.NoError(t, MyMain(nil, nil, "s2", fname, outfname, aln.Fasta))

	fi, err := os.Stat(outfname)
	require.NoError(t, err)
	const sOf = "size of output from MyMain is too"
	assert.GreaterOrEqual(t, fi.Size(), int64(25), sOf+" small")
	assert.LessOrEqual(t, fi.Size(), int64(27), sOf+" big")

	got, err := aln.ReadFile(outfname, aln.Fasta)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
}

// TestBreak checks that we get an error if sequences have
// wrong lengths
func TestBreak(t *testing.T) {
	var seqstring string = `>s1
ABCD
> s2
-EF
> s3
-HIJ`

	fname, err := common.WrtTemp(seqstring)
	require.NoError(t, err)
	defer os.Remove(fname)
	err = MyMain(nil, io.Discard, "s2", fname, "", aln.Fasta)
	var lenErr *aln.SeqLenError
	require.True(t, errors.As(err, &lenErr), "want length error, got %v", err)
	assert.Equal(t, " s2", lenErr.Name)
}

// TestStreams reads and writes through the reader and writer, with no
// files.
func TestStreams(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, MyMain(strings.NewReader(seqstring), &out, "2", "-", "", aln.Fasta))
	assert.Equal(t, ">s1\nBCD\n> s2\nEFG\n> s3\nHIJ\n", out.String())

	out.Reset()
	err := MyMain(strings.NewReader(seqstring), &out, "monkey", "", "-", aln.Fasta)
	assert.ErrorContains(t, err, "monkey")
	assert.Zero(t, out.Len())
}

func TestFindRef(t *testing.T) {
	a, err := aln.FromText(seqstring, aln.Fasta)
	require.NoError(t, err)
	tests := []struct {
		ref  string
		want string
	}{
		{"1", "s1"},
		{"3", " s3"},
		{"s1", "s1"},
		{"> s3", " s3"},
		{"2", " s2"},
	}
	for _, tt := range tests {
		got, err := FindRef(a, tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.want, got, tt.ref)
	}
	for _, bad := range []string{"0", "4", "monkey"} {
		_, err := FindRef(a, bad)
		assert.Error(t, err, bad)
	}
}

func TestAllGapReference(t *testing.T) {
	a, err := aln.FromText("2 3\nref  ---\nother  ABC\n", aln.Phylip)
	require.NoError(t, err)
	_, err = Squash(a, "ref")
	assert.ErrorIs(t, err, aln.ErrNoColumns)
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4}, Columns("-AB-C-"))
	assert.Empty(t, Columns("--"))
}
