// 19 Oct 2026

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/andrew-torda/seqaln/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dogcat = "2 7\ndog  GATTACA\ncat  GA-CACA\n"

// run runs the command line with settings from the environment and
// home directory kept out of the way.
func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEQALN_FORMAT", "")
	os.Unsetenv("SEQALN_FORMAT")
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := common.ExitSuccess
	if err := cmd.Execute(); err != nil {
		stderr.WriteString(err.Error())
		code = common.ExitFailure
	}
	return code, stdout.String(), stderr.String()
}

func TestCheck(t *testing.T) {
	code, out, _ := run(t, dogcat, "check")
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, "stdin: 2 species, 7 sites\n", out)
}

func TestCheckFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "x.fa")
	require.NoError(t, os.WriteFile(fname, []byte(">a\nAC\n>b\nAG\n"), 0644))
	code, out, _ := run(t, "", "-f", "fasta", "check", fname)
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, fname+": 2 species, 2 sites\n", out)
}

func TestCheckDup(t *testing.T) {
	code, _, errOut := run(t, "2 2\na AC\na AC\n", "check")
	assert.Equal(t, common.ExitFailure, code)
	assert.Contains(t, errOut, `"a" is repeated`)
}

func TestConvert(t *testing.T) {
	code, out, _ := run(t, dogcat, "convert", "--to", "fasta")
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, ">dog\nGATTACA\n>cat\nGA-CACA\n", out)

	code, out, _ = run(t, out, "convert", "--from", "fasta", "--to", "phylip")
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, "2 7\ndog    GATTACA\ncat    GA-CACA\n", out)
}

func TestConvertToFile(t *testing.T) {
	outf := filepath.Join(t.TempDir(), "out.fa")
	code, _, _ := run(t, dogcat, "convert", "--to", "fa", "-", outf)
	require.Equal(t, common.ExitSuccess, code)
	a, err := aln.ReadFile(outf, aln.Fasta)
	require.NoError(t, err)
	assert.Equal(t, 7, a.Len())
}

func TestSubsetCmd(t *testing.T) {
	code, out, _ := run(t, dogcat, "subset", "-c", "1-3")
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, "2 3\ndog    GAT\ncat    GA-\n", out)

	code, _, errOut := run(t, dogcat, "subset", "-c", "1,8")
	assert.Equal(t, common.ExitFailure, code)
	assert.Contains(t, errOut, "only has 7 sites")
}

func TestSquashCmd(t *testing.T) {
	code, out, _ := run(t, dogcat, "squash", "cat")
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, "2 6\ndog    GATACA\ncat    GACACA\n", out)

	code, out, errOut := run(t, dogcat, "squash", "cow")
	assert.Equal(t, common.ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `could not find "cow"`)
}

func TestRandCmd(t *testing.T) {
	code, out, _ := run(t, "", "-f", "fasta", "rand", "-", "3", "20")
	require.Equal(t, common.ExitSuccess, code)
	a, err := aln.FromText(out, aln.Fasta)
	require.NoError(t, err)
	assert.Equal(t, 3, a.NSpecies())
	assert.Equal(t, 20, a.Len())
}

func TestEnvFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEQALN_FORMAT", "fasta")
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"check"})
	cmd.SetIn(strings.NewReader(">a\nAC\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "stdin: 1 species, 2 sites\n", stdout.String())
}

func TestVerbose(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "x.phy")
	require.NoError(t, os.WriteFile(fname, []byte(dogcat), 0644))
	code, _, errOut := run(t, "", "-v", "check", fname)
	require.Equal(t, common.ExitSuccess, code)
	assert.Contains(t, errOut, "seqaln: reading alignment file")
	aln.SetLogger(nil)
}

func TestExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	assert.Equal(t, common.ExitUsageError, Run([]string{"rand", "x"}, &stdout, &stderr))
	assert.Equal(t, common.ExitUsageError, Run([]string{"check", "--nosuchflag"}, &stdout, &stderr))
	assert.Equal(t, common.ExitUsageError, Run([]string{"subset", "-c", "0"}, &stdout, &stderr))
	assert.Equal(t, common.ExitUsageError, Run([]string{"subset"}, &stdout, &stderr))
	missing := filepath.Join(t.TempDir(), "missing.phy")
	assert.Equal(t, common.ExitFailure, Run([]string{"check", missing}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "cannot find alignment file")
	assert.Equal(t, common.ExitFailure, Run([]string{"-f", "nexus", "check", missing}, &stdout, &stderr))
}
