// Command gateway runs the Tokenization Operations Gateway: a REST front
// end over a single token factory contract.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "gateway",
		Short: "Tokenization Operations Gateway",
		// main prints errors itself (and skips errExit's empty one).
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newServeCommand())

	if err := root.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
