// 19 Oct 2026

// Package cli is the command line for the seqaln tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/andrew-torda/seqaln/pkg/common"
	"github.com/andrew-torda/seqaln/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// usageError marks errors in the command line itself, as opposed to
// errors in reading or writing alignments.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// nArgs is cobra.RangeArgs, but marks a failure as a usage error.
func nArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// app holds what the subcommands share.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the seqaln command and all its children.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "seqaln",
		Short: "Check, convert and take columns from multiple sequence alignments",
		Long: `seqaln reads phylip (relaxed, names up to 100 characters) and fasta
alignments, checks that names are unique and sequences all have the same
length, and writes them back out, whole or as a subset of columns.

An input of "-" or no input means standard input. An output of "-" or no
output means standard output. Compressed (gzip) input is fine.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.seqaln.yaml)")
	pf.StringP("format", "f", aln.Phylip.String(), "alignment format, phylip or fasta")
	pf.BoolP("verbose", "v", false, "say which files are read and written")
	a.v.BindPFlag("format", pf.Lookup("format"))
	a.v.BindPFlag("verbose", pf.Lookup("verbose"))

	rootCmd.AddCommand(
		a.checkCmd(),
		a.convertCmd(),
		a.subsetCmd(),
		a.squashCmd(),
		a.randCmd(),
	)
	return rootCmd
}

// setup reads the settings, once flags have been parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Setup(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.New(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Verbose {
		aln.SetLogger(log.New(cmd.ErrOrStderr(), "seqaln: ", 0))
	} else {
		aln.SetLogger(nil)
	}
	return nil
}

// format is the value of a format flag if it was given on the command
// line, otherwise the configured default.
func (a *app) format(cmd *cobra.Command, flag string) (aln.Format, error) {
	if flag != "" && cmd.Flags().Changed(flag) {
		s, err := cmd.Flags().GetString(flag)
		if err != nil {
			return aln.NoFormat, err
		}
		return aln.ParseFormat(s)
	}
	return a.cfg.AlnFormat()
}

// argOr returns args[i] or "" if there are not so many.
func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// Run executes the command line and returns an exit code. Errors go to
// stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "seqaln:", err)
		if errors.As(err, new(usageError)) {
			fmt.Fprintln(stderr, "try 'seqaln --help'")
			return common.ExitUsageError
		}
		return common.ExitFailure
	}
	return common.ExitSuccess
}

// Execute is called by main.main().
func Execute() int { return Run(os.Args[1:], os.Stdout, os.Stderr) }
