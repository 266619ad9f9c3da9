package main

import (
	"fmt"
	"os"

	"github.com/pzsh/pzsh/internal/logging"
	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/executor"
	"github.com/pzsh/pzsh/pkg/plugin"
	"github.com/pzsh/pzsh/pkg/shellgen"
	"github.com/pzsh/pzsh/pkg/theme"
	"github.com/spf13/cobra"
)

func newCompileCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		themeName  string
		noExtras   bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile configuration to a shell init script",
		Long: `Compile the TOML configuration into the script your shell sources.

With no --output the script is printed to stdout, for use as
eval "$(pzsh compile)" in ~/.zshrc.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()
			path := loader.ConfigPath(expandHome(configPath))

			cfg, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("compile error: %w", err)
			}
			logging.Debug().Str("path", path).Msg("configuration compiled")

			ex := executor.New(cfg)
			if err := ex.Initialize(); err != nil {
				return err
			}

			reg := plugin.NewRegistry()
			for _, err := range reg.LoadEnabled(cfg) {
				logging.Warn().Err(err).Msg("plugin load failed")
			}

			themes := theme.NewRegistry()
			if themeName != "" {
				if err := themes.SetCurrent(themeName); err != nil {
					return err
				}
			}

			script := shellgen.InitScript(ex, reg, shellgen.Options{
				Shell:       cfg.ShellType,
				Theme:       themes.Current(),
				Completions: !noExtras,
				Widgets:     !noExtras,
				Jump:        !noExtras,
			})

			if outputPath != "" {
				out := expandHome(outputPath)
				if err := os.WriteFile(out, []byte(script), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
				fmt.Fprintf(os.Stderr, "✓ Compiled to %s\n", out)
				return nil
			}

			fmt.Print(script)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to source configuration")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for the init script")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "Prompt theme name")
	cmd.Flags().BoolVar(&noExtras, "no-extras", false, "Skip completions, widgets and directory jump")

	return cmd
}
