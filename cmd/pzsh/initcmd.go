package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// starterConfig renders the annotated configuration written by pzsh init.
func starterConfig(shell string) string {
	return fmt.Sprintf(`# pzsh configuration
# Performance-first shell framework with sub-10ms startup

[pzsh]
version = "0.1.0"
shell = "%s"

[performance]
startup_budget_ms = 10
prompt_budget_ms = 2
lazy_load = true

[prompt]
format = "{user}@{host} {cwd} {git} {char} "
git_async = true
git_cache_ms = 1000

[aliases]
# Add your aliases here (no subprocess calls!)
ll = "ls -la"
gs = "git status"
gp = "git push"

[env]
# Add your environment variables here (pre-resolved paths only!)
EDITOR = "vim"
# GOROOT = "/usr/local/opt/go/libexec"  # Example: hardcoded, not $(brew --prefix)

[plugins]
enabled = ["git"]
lazy = []

[keybindings]
# ctrl-r = "history-search"
`, shell)
}

func newInitCmd() *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("could not find home directory: %w", err)
			}
			configPath := filepath.Join(home, ".pzshrc")

			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists; remove it first or edit it manually", configPath)
			}

			if err := os.WriteFile(configPath, []byte(starterConfig(shellName)), 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Printf("✓ Created %s\n", configPath)
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Edit ~/.pzshrc to add your aliases and env vars")
			fmt.Println("  2. Run `pzsh compile` to compile the configuration")
			fmt.Println("  3. Add `eval \"$(pzsh compile)\"` to your ~/.zshrc")
			return nil
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "zsh", "Shell type (zsh or bash)")

	return cmd
}
