package main

import (
	"fmt"
	"os"

	"github.com/pzsh/pzsh/pkg/lint"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint configuration for slow patterns",
		Long: `Scan a shell configuration for patterns that slow down startup:
subprocess substitution, eval, heavyweight plugin managers, and
version-manager hooks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := expandHome(configPath)
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			result := lint.Lint(string(content))
			fmt.Println(result.Format())

			if !result.Passed() {
				return fmt.Errorf("lint found blocking issues")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "~/.pzshrc", "Path to configuration file")

	return cmd
}

func newFixCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Show fixes for slow patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := expandHome(configPath)
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			result := lint.Lint(string(content))
			if len(result.Issues) == 0 {
				fmt.Println("✓ No issues to fix")
				return nil
			}

			fmt.Printf("Found %d issues:\n", len(result.Issues))
			for _, issue := range result.Issues {
				if issue.Fix == "" {
					continue
				}
				prefix := "Fix"
				if dryRun {
					prefix = "Would fix"
				}
				fmt.Printf("  %s: %s -> %s\n", prefix, issue.Message, issue.Fix)
			}

			if dryRun {
				fmt.Println("\n(dry run - no changes made)")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "~/.pzshrc", "Path to configuration file")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show fixes without applying")

	return cmd
}
