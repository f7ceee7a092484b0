package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/match"
	"github.com/aifinder/ai-finder/internal/ratelimit"
)

// analysisDelay is a short presentational pause before results, kept from
// the original product so interactive use does not feel instantaneous.
const analysisDelay = 600 * time.Millisecond

// NewMatchCmd creates the 'match' command for ranking agents against a task.
func NewMatchCmd() *cobra.Command {
	var jsonOutput bool
	var withStack bool

	cmd := &cobra.Command{
		Use:   "match <query>...",
		Short: "Find the best AI agents for a task",
		Long: `Rank the agent directory against a natural-language description of what
you want to accomplish. Shows up to 5 agents with score, confidence and
reasoning, and records the search in local history.`,
		Example: `  ai-finder match summarize long legal documents
  ai-finder match "build a saas dashboard" --stack
  ai-finder match generate product images --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, strings.Join(args, " "), jsonOutput, withStack)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVarP(&withStack, "stack", "s", false, "Also recommend a tech stack when the query has build intent")

	return cmd
}

// matchResult is the JSON shape for one ranked agent.
type matchResult struct {
	AgentID    string  `json:"agentId"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	Confidence int     `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func runMatch(cmd *cobra.Command, query string, jsonOutput, withStack bool) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.checkLimit(ratelimit.ActionSearch); err != nil {
		return err
	}

	if !jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "Analyzing '%s'...\n\n", query)
		time.Sleep(analysisDelay)
	}

	results := app.Engine.AnalyzeQuery(query)
	if len(results) == 0 {
		if jsonOutput {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No agents matched. Try describing the task differently.")
		return nil
	}

	app.History.Append(query, results[0].Agent.Name)

	if jsonOutput {
		out := make([]matchResult, len(results))
		for i, r := range results {
			out[i] = matchResult{
				AgentID:    r.Agent.ID,
				Name:       r.Agent.Name,
				Category:   string(r.Agent.Category),
				Score:      r.Score,
				Confidence: match.Confidence(r.Score),
				Reasoning:  r.Reasoning,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, r.Agent.Name, r.Agent.Category)
		fmt.Fprintf(cmd.OutOrStdout(), "   Score: %.1f  Confidence: %d%%\n", r.Score, match.Confidence(r.Score))
		fmt.Fprintf(cmd.OutOrStdout(), "   %s\n\n", r.Reasoning)
	}

	if withStack {
		printStack(cmd, app, query)
	}
	return nil
}
