package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/match"
)

// NewPromptCmd creates the 'prompt' command for generating optimized prompts.
func NewPromptCmd() *cobra.Command {
	var save bool
	var title string

	cmd := &cobra.Command{
		Use:   "prompt <agent-id> <query>...",
		Short: "Generate an optimized prompt for an agent",
		Long: `Generate a ready-to-paste prompt tailored to an agent and a task. Agent
ids come from 'ai-finder match' or 'ai-finder directory'.`,
		Example: `  ai-finder prompt claude summarize my meeting notes
  ai-finder prompt jasper write a product launch email --save --title "Launch email"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, args[0], strings.Join(args[1:], " "), save, title)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the generated prompt as a template")
	cmd.Flags().StringVar(&title, "title", "", "Title for the saved template")

	return cmd
}

func runPrompt(cmd *cobra.Command, agentID, query string, save bool, title string) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	agent, ok := app.Catalog.AgentByID(agentID)
	if !ok {
		return fmt.Errorf("agent '%s' not found, try 'ai-finder directory'", agentID)
	}

	prompt := match.GeneratePrompt(query, agent)
	fmt.Fprintln(cmd.OutOrStdout(), prompt)

	if save {
		if title == "" {
			title = query
		}
		app.UserData.SaveTemplate(title, agent.Name, prompt)
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as template '%s'.\n", title)
	}
	return nil
}
