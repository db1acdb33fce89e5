// Command rfn inspects and exercises boundary-safe callable representations.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/rfn/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
