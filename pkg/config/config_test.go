package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noHome points the home directory somewhere empty, so a real
// ~/.seqaln.yaml cannot leak into the tests.
func noHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
}

func TestDefaults(t *testing.T) {
	noHome(t)
	v := viper.New()
	require.NoError(t, Setup(v, ""))
	c, err := New(v)
	require.NoError(t, err)
	assert.Equal(t, "phylip", c.Format)
	assert.False(t, c.Verbose)
	f, err := c.AlnFormat()
	require.NoError(t, err)
	assert.Equal(t, aln.Phylip, f)
}

func TestEnv(t *testing.T) {
	noHome(t)
	t.Setenv("SEQALN_FORMAT", "fasta")
	t.Setenv("SEQALN_VERBOSE", "true")
	v := viper.New()
	require.NoError(t, Setup(v, ""))
	c, err := New(v)
	require.NoError(t, err)
	assert.Equal(t, "fasta", c.Format)
	assert.True(t, c.Verbose)
}

func TestConfigFile(t *testing.T) {
	noHome(t)
	fname := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(fname, []byte("format: fas\n"), 0644))
	v := viper.New()
	require.NoError(t, Setup(v, fname))
	c, err := New(v)
	require.NoError(t, err)
	f, err := c.AlnFormat()
	require.NoError(t, err)
	assert.Equal(t, aln.Fasta, f)
}

func TestHomeConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".seqaln.yaml"), []byte("verbose: true\n"), 0644))
	v := viper.New()
	require.NoError(t, Setup(v, ""))
	c, err := New(v)
	require.NoError(t, err)
	assert.True(t, c.Verbose)
}

func TestMissingConfigFile(t *testing.T) {
	noHome(t)
	v := viper.New()
	err := Setup(v, filepath.Join(t.TempDir(), "nothere.yaml"))
	assert.Error(t, err)
}

func TestBadFormat(t *testing.T) {
	c := Config{Format: "nexus"}
	_, err := c.AlnFormat()
	var ufe *aln.UnsupportedFormatError
	assert.ErrorAs(t, err, &ufe)
}
