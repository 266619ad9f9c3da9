package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/plugin"
	"github.com/pzsh/pzsh/pkg/theme"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pzsh status",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("pzsh v%s\n", version)
			fmt.Println("────────────────────────────")

			bench := runBench(10)
			status := "✓"
			if !bench.Passed {
				status = "✗"
			}
			fmt.Printf("Startup: %.2fms (budget: %dms) %s\n",
				bench.Mean.Seconds()*1000, budget.DefaultStartupMS, status)

			loader := config.NewLoader()
			path := loader.ConfigPath("")
			fmt.Printf("Config:  %s\n", path)

			reg := plugin.NewRegistry()
			themes := theme.NewRegistry()

			rows := pterm.TableData{{"Plugins", "Themes"}}
			plugins := reg.List()
			names := themes.List()
			for i := 0; i < len(plugins) || i < len(names); i++ {
				var p, t string
				if i < len(plugins) {
					p = plugins[i]
				}
				if i < len(names) {
					t = names[i]
				}
				rows = append(rows, []string{p, t})
			}
			return pterm.DefaultTable.
				WithHasHeader().
				WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
				WithData(rows).
				Render()
		},
	}
}
