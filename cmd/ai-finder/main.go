/*
Package main is the entry point for the ai-finder CLI.

ai-finder matches natural-language task descriptions against a curated
directory of AI agents, generates optimized prompts, and can serve the
whole finder over MCP.

Usage:
  ai-finder [command]

Available Commands:
  match       Find the best AI agents for a task
  stack       Recommend a tech stack for something you want to build
  prompt      Generate an optimized prompt for an agent
  refine      Answer a few questions to build a custom prompt
  directory   Browse the agent directory
  history     Show or clear past searches
  status      Show the agent status board
  serve       Run the MCP server (stdio transport)
  version     Show version information

Examples:
  # Rank agents for a task
  ai-finder match summarize long legal documents

  # Run as MCP server
  ai-finder serve
*/
package main

import (
	"fmt"
	"os"

	"github.com/aifinder/ai-finder/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
