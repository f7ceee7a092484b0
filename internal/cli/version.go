package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/version"
)

// NewVersionCmd creates the 'version' command
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the current version, commit hash, and build date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	return cmd
}

func runVersion(cmd *cobra.Command) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Version:  %s\n", version.Version)
	fmt.Fprintf(cmd.OutOrStdout(), "Commit:   %s\n", version.Commit)
	fmt.Fprintf(cmd.OutOrStdout(), "Built:    %s\n", version.Date)
	return nil
}
