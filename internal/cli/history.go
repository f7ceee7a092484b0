package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command.
func NewHistoryCmd() *cobra.Command {
	var clear bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear past searches",
		Long:  `Display recent queries and the agent that matched best for each.`,
		Example: `  ai-finder history
  ai-finder history --json
  ai-finder history --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, clear, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all history")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runHistory(cmd *cobra.Command, clear, jsonOutput bool) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	if clear {
		app.History.Clear()
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	items := app.History.ReadAll()

	if jsonOutput {
		if items == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return nil
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No search history yet.")
		return nil
	}

	fmt.Fprintf(out, "Recent searches (%d):\n\n", len(items))
	for _, item := range items {
		when := time.UnixMilli(item.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %s  %-40s → %s\n", when, item.Query, item.TopAgentName)
	}
	return nil
}
