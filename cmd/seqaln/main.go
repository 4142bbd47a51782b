// 19 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/seqaln/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
