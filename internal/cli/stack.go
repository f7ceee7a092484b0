package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/catalog"
)

// NewStackCmd creates the 'stack' command for tech stack recommendations.
func NewStackCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stack <query>...",
		Short: "Recommend a tech stack for something you want to build",
		Long: `Match a build-intent query against the stack templates and print the best
fit. Queries without build intent (nothing about building an app, site,
store, bot or API) produce no recommendation.`,
		Example: `  ai-finder stack build an online store
  ai-finder stack "create a mobile app" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStack(cmd, strings.Join(args, " "), jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runStack(cmd *cobra.Command, query string, jsonOutput bool) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	stack := app.Engine.RecommendStack(query)
	if stack == nil {
		if jsonOutput {
			fmt.Fprintln(cmd.OutOrStdout(), "null")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No build intent detected, nothing to recommend.")
		return nil
	}

	if jsonOutput {
		data, err := json.MarshalIndent(stack, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printStackTemplate(cmd, stack)
	return nil
}

func printStack(cmd *cobra.Command, app *App, query string) {
	stack := app.Engine.RecommendStack(query)
	if stack == nil {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout())
	printStackTemplate(cmd, stack)
}

func printStackTemplate(cmd *cobra.Command, stack *catalog.TechStack) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recommended stack: %s\n\n", stack.UseCase)
	fmt.Fprintf(out, "  Frontend:  %s\n             %s\n", stack.Frontend.Name, stack.Frontend.Reason)
	fmt.Fprintf(out, "  Backend:   %s\n             %s\n", stack.Backend.Name, stack.Backend.Reason)
	fmt.Fprintf(out, "  Database:  %s\n             %s\n", stack.Database.Name, stack.Database.Reason)
	fmt.Fprintf(out, "  Hosting:   %s\n             %s\n", stack.Hosting.Name, stack.Hosting.Reason)
}
