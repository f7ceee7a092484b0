package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/catalog"
)

// NewStatusCmd creates the 'status' command showing simulated agent health.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the agent status board",
		Long:    `Display operational status for every agent in the directory.`,
		Example: `  ai-finder status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}

	return cmd
}

func runStatus(cmd *cobra.Command) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Agent status:")
	fmt.Fprintln(out)
	for _, entry := range app.Catalog.Statuses(time.Now()) {
		icon := "✓"
		switch entry.Status {
		case catalog.StatusDegraded:
			icon = "!"
		case catalog.StatusDown:
			icon = "✗"
		}
		fmt.Fprintf(out, "  %s %-20s %-12s uptime %.2f%%  %s\n",
			icon, entry.Name, entry.Status, entry.Uptime, entry.Latency)
		for _, incident := range entry.Incidents {
			fmt.Fprintf(out, "      %s\n", incident)
		}
	}
	return nil
}
