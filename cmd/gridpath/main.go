// Command gridpath searches, generates and serves occupancy grids.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/internal/cli"
)

func main() {
	if err := cli.BuildCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
