// Command n is the thin executable shell around internal/cli: it has no
// logic of its own beyond handing off to the command tree and turning a
// returned error into a non-zero exit status.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/n/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
