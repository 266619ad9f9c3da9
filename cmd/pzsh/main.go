// Package main implements the pzsh command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/pzsh/pzsh/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	version = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pzsh",
		Short: "pzsh - Performance-first shell framework",
		Long: `pzsh keeps shell startup under a hard millisecond budget.

It compiles your configuration ahead of time, lints out the patterns
that make shells slow, and generates the init script your shell
actually sources.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logging.Init(logging.Config{Level: logging.DebugLevel, Pretty: true})
			}
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newCompileCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newProfileCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd())

	return cmd
}

// expandHome rewrites a leading ~/ to the current home directory.
func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
