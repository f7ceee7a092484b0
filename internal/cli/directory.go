package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/search"
)

// NewDirectoryCmd creates the 'directory' command for browsing the catalog.
func NewDirectoryCmd() *cobra.Command {
	var searchQuery string
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "directory",
		Aliases: []string{"dir", "agents"},
		Short:   "Browse the agent directory",
		Long: `List the agents in the directory. Filter by category, or run a full-text
search over names, descriptions and keywords.`,
		Example: `  ai-finder directory
  ai-finder directory --category Writing
  ai-finder directory --search "image generation" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectory(cmd, searchQuery, category, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&searchQuery, "search", "s", "", "Full-text search query")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runDirectory(cmd *cobra.Command, searchQuery, category string, jsonOutput bool) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	if searchQuery != "" {
		return runDirectorySearch(cmd, app, searchQuery, jsonOutput)
	}

	agents := app.Catalog.Agents()
	if category != "" {
		cat := catalog.Category(category)
		if !cat.Valid() {
			return fmt.Errorf("unknown category '%s', valid: %v", category, catalog.Categories())
		}
		agents = app.Catalog.ByCategory(cat)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(agents, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Agents (%d):\n\n", len(agents))
	for _, a := range agents {
		verified := ""
		if a.Verified {
			verified = " ✓"
		}
		fmt.Fprintf(out, "  %s%s (%s)\n", a.Name, verified, a.Category)
		fmt.Fprintf(out, "    id: %s  rating: %.1f (%d reviews)  pricing: %s\n", a.ID, a.Rating, a.ReviewCount, a.Pricing)
		fmt.Fprintf(out, "    %s\n\n", a.Description)
	}
	return nil
}

func runDirectorySearch(cmd *cobra.Command, app *App, query string, jsonOutput bool) error {
	idx, err := search.NewIndexer(app.Catalog)
	if err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	defer idx.Close()

	hits, err := idx.Search(query, 10)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintf(out, "No agents match '%s'.\n", query)
		return nil
	}
	fmt.Fprintf(out, "Matches for '%s':\n\n", query)
	for i, h := range hits {
		fmt.Fprintf(out, "  %d. %s (%s)  id: %s\n", i+1, h.Name, h.Category, h.AgentID)
		fmt.Fprintf(out, "     %s\n\n", h.Description)
	}
	return nil
}
