// 19 Oct 2026

package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/andrew-torda/seqaln/pkg/common"
	"github.com/andrew-torda/seqaln/pkg/randaln"
	"github.com/spf13/cobra"
)

// writeRand sends a random alignment to a file or the command's output.
func writeRand(cmd *cobra.Command, fname string, args *randaln.Args) (err error) {
	if common.IsStdio(fname) {
		bw := bufio.NewWriter(cmd.OutOrStdout())
		args.Wrtr = bw
		if err := randaln.Main(args); err != nil {
			return err
		}
		return bw.Flush()
	}
	ft, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("file for output: %w", err)
	}
	defer func() {
		if e := ft.Close(); e != nil && err == nil {
			err = e
		}
	}()
	bw := bufio.NewWriter(ft)
	args.Wrtr = bw
	if err := randaln.Main(args); err != nil {
		return err
	}
	return bw.Flush()
}
