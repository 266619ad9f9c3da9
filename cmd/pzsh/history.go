package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/history"
	"github.com/spf13/cobra"
)

func openHistory() (*history.Store, error) {
	return history.Open(config.NewLoader().StateDir(), 0)
}

func newHistoryCmd() *cobra.Command {
	var (
		limit        int
		search       string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show command history",
		Long: `Display the commands pzsh has recorded.

Examples:
  history                    # Show recent history
  history --limit 50         # Show last 50 commands
  history --search "git"     # Search for commands containing "git"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}

			var entries []history.Entry
			if search != "" {
				entries = store.Search(search)
				if limit > 0 && len(entries) > limit {
					entries = entries[len(entries)-limit:]
				}
			} else {
				entries = store.Recent(limit)
			}

			if len(entries) == 0 {
				fmt.Println("No history entries found")
				return nil
			}

			if outputFormat == "json" {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			for _, entry := range entries {
				fmt.Printf("%s  %s\n", entry.Timestamp.Format("15:04:05"), entry.Command)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Search pattern")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")

	cmd.AddCommand(newHistoryTopCmd())
	cmd.AddCommand(newHistoryClearCmd())

	return cmd
}

func newHistoryTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show most used commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}

			top := store.MostUsed(limit)
			if len(top) == 0 {
				fmt.Println("No history entries found")
				return nil
			}
			for _, freq := range top {
				fmt.Printf("%6d  %s\n", freq.Count, freq.Command)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of commands to show")

	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear command history",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			store.Clear()
			if err := store.Save(); err != nil {
				return err
			}
			fmt.Println("✓ History cleared")
			return nil
		},
	}
}
