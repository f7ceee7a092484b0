package cli

import (
	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/version"
)

// cfgFile is the --config path shared by all commands; empty means defaults
// plus environment overrides.
var cfgFile string

// NewRootCmd assembles the ai-finder command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ai-finder",
		Short: "Find the right AI agent for any task",
		Long: `ai-finder matches what you want to accomplish against a curated directory
of AI agents and tells you which one to use, how confident it is, and why.

Typical flow:
  1. ai-finder match <task>        rank agents for a task
  2. ai-finder prompt <id> <task>  get a ready-to-paste prompt
  3. ai-finder refine <id> <task>  answer questions for a tailored prompt

Everything runs locally: the catalog is embedded and history lives in a
SQLite database under ~/.ai-finder.`,
		Version: version.String(),
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(NewMatchCmd())
	rootCmd.AddCommand(NewStackCmd())
	rootCmd.AddCommand(NewPromptCmd())
	rootCmd.AddCommand(NewRefineCmd())
	rootCmd.AddCommand(NewDirectoryCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
