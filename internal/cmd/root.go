package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "host-runtime",
	Short: "JavaScript host runtime identification",
	Long: `host-runtime identifies which JavaScript host runtime a process is
executing under: Browser, Node.js, Bun, Deno, or none of these.

Compiled for js/wasm it inspects the live host-global namespace; on any
other platform it runs against a recorded globals dump (--globals-file).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
