// 29 Apr 2020
// 19 Oct 2026 moved out of the seq package so the commands and tests
// of the alignment code can share it.

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// StdioName is the file name that means standard input or output.
const StdioName = "-"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	name := f_tmp.Name()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", name, err)
	}
	if err := f_tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file %v: %w", name, err)
	}
	return name, nil
}

// IsStdio says whether a file name means standard input/output.
func IsStdio(fname string) bool { return fname == "" || fname == StdioName }
