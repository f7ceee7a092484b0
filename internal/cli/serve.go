package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aifinder/ai-finder/internal/mcp"
)

// NewServeCmd creates the 'serve' command for running the MCP server.
//
// This exposes the finder over stdio transport:
// - finder_match, finder_stack, finder_prompt, finder_refine, finder_history
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio transport)",
		Long: `Start the ai-finder server using stdio transport.

This server exposes 5 tools to AI clients:
  • finder_match   - Rank agents against a task description
  • finder_stack   - Recommend a tech stack for a build query
  • finder_prompt  - Generate an optimized prompt for an agent
  • finder_refine  - List refinement questions for an agent
  • finder_history - Show recent searches`,
		Example: `  # Run directly
  ai-finder serve

  # Add to Claude Code
  claude mcp add ai-finder -- ai-finder serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	return cmd
}

// runServe starts the MCP server with stdio transport and signal handling.
func runServe() error {
	app, err := newApp(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defer app.Close()

	server := mcp.NewServer(app.Catalog, app.Engine, app.History)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case sig := <-sigChan:
		app.logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
		return nil

	case err := <-errChan:
		// Run returned: stdin closed or a transport error.
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
