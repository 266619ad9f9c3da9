package main

import (
	"fmt"
	"time"

	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/shell"
	"github.com/spf13/cobra"
)

func formatProfile(t shell.StageTimings) string {
	ms := func(d time.Duration) float64 { return d.Seconds() * 1000 }
	status := "✓"
	if t.Total >= time.Duration(budget.DefaultStartupMS)*time.Millisecond {
		status = "✗"
	}
	return fmt.Sprintf(
		"Startup Profile\n"+
			"├─ parser:   %6.3fms\n"+
			"├─ executor: %6.3fms\n"+
			"├─ prompt:   %6.3fms\n"+
			"└─ total:    %6.3fms %s\n",
		ms(t.Parser), ms(t.Executor), ms(t.Prompt), ms(t.Total), status)
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Profile startup stage by stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			timings := shell.Profile(config.Default())
			fmt.Print(formatProfile(timings))

			if timings.Total >= time.Duration(budget.DefaultStartupMS)*time.Millisecond {
				return fmt.Errorf("startup exceeds the %dms budget", budget.DefaultStartupMS)
			}
			return nil
		},
	}
}
