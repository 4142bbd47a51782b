// 19 Oct 2026

package cli

import (
	"fmt"
	"strconv"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/andrew-torda/seqaln/pkg/cols"
	"github.com/andrew-torda/seqaln/pkg/common"
	"github.com/andrew-torda/seqaln/pkg/randaln"
	"github.com/andrew-torda/seqaln/pkg/squash"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [infile]",
		Short: "Read and check an alignment, print its size",
		Args:  nArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, "")
			if err != nil {
				return err
			}
			infile := argOr(args, 0)
			al, err := aln.ReadPath(infile, cmd.InOrStdin(), f)
			if err != nil {
				return err
			}
			if common.IsStdio(infile) {
				infile = "stdin"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d species, %d sites\n", infile, al.NSpecies(), al.Len())
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [infile [outfile]]",
		Short: "Read an alignment in one format and write it in another",
		Args:  nArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.format(cmd, "from")
			if err != nil {
				return err
			}
			to, err := a.format(cmd, "to")
			if err != nil {
				return err
			}
			al, err := aln.ReadPath(argOr(args, 0), cmd.InOrStdin(), from)
			if err != nil {
				return err
			}
			return al.WritePath(argOr(args, 1), cmd.OutOrStdout(), to)
		},
	}
	cmd.Flags().String("from", "", "input format (default from --format)")
	cmd.Flags().String("to", "", "output format (default from --format)")
	return cmd
}

func (a *app) subsetCmd() *cobra.Command {
	var sites string
	cmd := &cobra.Command{
		Use:   "subset -c sites [infile [outfile]]",
		Short: "Write the alignment restricted to some sites",
		Long: `Write the alignment restricted to some sites. Sites are numbered from 1
and given as a list like "1-100\3, 200 205-210". Sites come out in the
order they are listed, repeats included.`,
		Args: nArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, "")
			if err != nil {
				return err
			}
			if sites == "" {
				return usageError{fmt.Errorf("subset needs a list of sites, -c")}
			}
			columns, err := cols.Parse(sites)
			if err != nil {
				return usageError{err}
			}
			al, err := aln.ReadPath(argOr(args, 0), cmd.InOrStdin(), f)
			if err != nil {
				return err
			}
			sub, err := aln.Subset(al, columns)
			if err != nil {
				return err
			}
			return sub.WritePath(argOr(args, 1), cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&sites, "columns", "c", "", "sites to keep, from 1")
	return cmd
}

func (a *app) squashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squash reference [infile [outfile]]",
		Short: "Remove columns which are gaps in a reference sequence",
		Long: `Remove columns which are gaps in a reference sequence.
The reference is a sequence name, or part of one, or the number of the
sequence, counting from 1.`,
		Args: nArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, "")
			if err != nil {
				return err
			}
			return squash.MyMain(cmd.InOrStdin(), cmd.OutOrStdout(),
				args[0], argOr(args, 1), argOr(args, 2), f)
		},
	}
}

func (a *app) randCmd() *cobra.Command {
	var rargs randaln.Args
	cmd := &cobra.Command{
		Use:   "rand outfile nseq length",
		Short: "Write a random alignment, for testing",
		Args:  nArgs(3, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, "")
			if err != nil {
				return err
			}
			rargs.Format = f
			const emsg = "failed converting %s to positive integer"
			nseq, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return usageError{fmt.Errorf(emsg, args[1])}
			}
			nlen, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return usageError{fmt.Errorf(emsg, args[2])}
			}
			rargs.Nseq, rargs.Len = int(nseq), int(nlen)
			return writeRand(cmd, args[0], &rargs)
		},
	}
	const iseed int64 = 1637
	cmd.Flags().Int64VarP(&rargs.Iseed, "seed", "s", iseed, "random number seed")
	cmd.Flags().BoolVarP(&rargs.NoGap, "nogap", "g", false, "do not put gaps in sequences")
	cmd.Flags().BoolVarP(&rargs.MkErr, "err", "e", false, "make the last sequence too short")
	cmd.Flags().StringVarP(&rargs.Name, "name", "n", "s", "start of species names")
	return cmd
}
