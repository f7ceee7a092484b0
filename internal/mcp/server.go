/*
Package mcp implements the MCP server that exposes the agent finder.

The server uses stdio transport and exposes 5 tools:
  - finder_match: Rank catalog agents against a natural-language query
  - finder_stack: Recommend a tech stack for a build-intent query
  - finder_prompt: Generate an optimized prompt for an agent and query
  - finder_refine: List the refinement questions for an agent
  - finder_history: Show recent queries and their top matches
*/
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/history"
	"github.com/aifinder/ai-finder/internal/match"
	"github.com/aifinder/ai-finder/internal/refine"
)

// Server represents the ai-finder MCP server.
type Server struct {
	catalog *catalog.Catalog
	engine  *match.Engine
	history *history.Store

	in  io.Reader
	out io.Writer
}

// NewServer creates a new MCP server over the catalog, match engine and
// history store, speaking JSON-RPC on stdin/stdout.
func NewServer(c *catalog.Catalog, engine *match.Engine, hist *history.Store) *Server {
	return &Server{
		catalog: c,
		engine:  engine,
		history: hist,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Run starts the MCP server loop. This blocks until the input is closed.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)

	for scanner.Scan() {
		line := scanner.Bytes()

		response, err := s.handleRequest(line)
		if err != nil {
			s.sendError(err)
			continue
		}

		if response != nil {
			s.sendResponse(response)
		}
	}

	return scanner.Err()
}

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents an MCP error.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// handleRequest processes an incoming MCP request.
func (s *Server) handleRequest(data []byte) (*MCPResponse, error) {
	var req MCPRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON-RPC request: %w", err)
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(&req)
	case "tools/list":
		return s.handleToolsList(&req)
	case "tools/call":
		return s.handleToolsCall(&req)
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &MCPError{Code: -32601, Message: "Method not found"},
		}, nil
	}
}

// handleInitialize handles the MCP initialize request.
func (s *Server) handleInitialize(req *MCPRequest) (*MCPResponse, error) {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "ai-finder",
				"version": "0.1.0",
			},
		},
	}, nil
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) (*MCPResponse, error) {
	tools := []map[string]interface{}{
		{
			"name": "finder_match",
			"description": `Rank AI agents from the directory against a natural-language task description.

WHEN TO USE: When the user describes something they want to accomplish and needs a tool recommendation.

Returns: Up to 5 agents, best first, each with a score, confidence and reasoning.`,
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "What the user wants to accomplish, in plain language",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			"name": "finder_stack",
			"description": `Recommend a technology stack template for a build-intent query.

WHEN TO USE: When the query is about building an app, site, store, bot or API.

Returns: The best-fitting stack template, or nothing when the query carries no build intent.`,
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "What the user wants to build",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			"name": "finder_prompt",
			"description": `Generate an optimized prompt for a specific agent and task.

WORKFLOW:
1. finder_match(query) to pick an agent
2. finder_prompt(agent, query) to get a ready-to-paste prompt`,
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"agent": map[string]interface{}{
						"type":        "string",
						"description": "Agent id from finder_match results",
						"enum":        s.agentIDs(),
					},
					"query": map[string]interface{}{
						"type":        "string",
						"description": "The task the prompt should target",
					},
				},
				"required": []string{"agent", "query"},
			},
		},
		{
			"name": "finder_refine",
			"description": `List the refinement questions for an agent.

WHEN TO USE: To tailor a prompt beyond finder_prompt, answer these questions and build a custom brief.

Returns: Question steps with their selectable options.`,
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"agent": map[string]interface{}{
						"type":        "string",
						"description": "Agent id",
						"enum":        s.agentIDs(),
					},
				},
				"required": []string{"agent"},
			},
		},
		{
			"name": "finder_history",
			"description": `Show recent queries and the agent that matched best for each.

Returns: Up to 100 records, newest first.`,
			"inputSchema": map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": tools,
		},
	}, nil
}

// agentIDs returns catalog agent ids for schema enums.
func (s *Server) agentIDs() []string {
	agents := s.catalog.Agents()
	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
	}
	return ids
}

// handleToolsCall handles tool execution requests.
func (s *Server) handleToolsCall(req *MCPRequest) (*MCPResponse, error) {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	var result interface{}
	var err error

	switch params.Name {
	case "finder_match":
		query, _ := params.Arguments["query"].(string)
		result, err = s.execMatch(query)
	case "finder_stack":
		query, _ := params.Arguments["query"].(string)
		result, err = s.execStack(query)
	case "finder_prompt":
		agentID, _ := params.Arguments["agent"].(string)
		query, _ := params.Arguments["query"].(string)
		result, err = s.execPrompt(agentID, query)
	case "finder_refine":
		agentID, _ := params.Arguments["agent"].(string)
		result, err = s.execRefine(agentID)
	case "finder_history":
		result, err = s.execHistory()
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &MCPError{Code: -32602, Message: fmt.Sprintf("Unknown tool: %s", params.Name)},
		}, nil
	}

	if err != nil {
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &MCPError{Code: -32000, Message: err.Error()},
		}, nil
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": result,
				},
			},
		},
	}, nil
}

// execMatch ranks agents for a query and records the result in history.
func (s *Server) execMatch(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query is required")
	}

	results := s.engine.AnalyzeQuery(query)
	if len(results) == 0 {
		return fmt.Sprintf("No agents matched '%s'. Try describing the task differently.", query), nil
	}

	s.history.Append(query, results[0].Agent.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Top matches for '%s':\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s (%s): score %.1f, confidence %d%%\n   %s\n",
			i+1, r.Agent.Name, r.Agent.Category, r.Score, match.Confidence(r.Score), r.Reasoning)
	}
	return b.String(), nil
}

// execStack recommends a stack template for a build-intent query.
func (s *Server) execStack(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query is required")
	}

	stack := s.engine.RecommendStack(query)
	if stack == nil {
		return "No build intent detected in the query, so no stack to recommend.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recommended stack for %s:\n", stack.UseCase)
	fmt.Fprintf(&b, "  • Frontend: %s (%s)\n", stack.Frontend.Name, stack.Frontend.Reason)
	fmt.Fprintf(&b, "  • Backend: %s (%s)\n", stack.Backend.Name, stack.Backend.Reason)
	fmt.Fprintf(&b, "  • Database: %s (%s)\n", stack.Database.Name, stack.Database.Reason)
	fmt.Fprintf(&b, "  • Hosting: %s (%s)\n", stack.Hosting.Name, stack.Hosting.Reason)
	return b.String(), nil
}

// execPrompt generates the optimized prompt for an agent.
func (s *Server) execPrompt(agentID, query string) (string, error) {
	agent, ok := s.catalog.AgentByID(agentID)
	if !ok {
		return "", fmt.Errorf("agent '%s' not found", agentID)
	}
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query is required")
	}
	return match.GeneratePrompt(query, agent), nil
}

// execRefine lists the refinement question steps for an agent.
func (s *Server) execRefine(agentID string) (string, error) {
	agent, ok := s.catalog.AgentByID(agentID)
	if !ok {
		return "", fmt.Errorf("agent '%s' not found", agentID)
	}

	steps := refine.Questions("", agent)
	var b strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&b, "Step %d: %s\n", i+1, step.Title)
		for _, q := range step.Questions {
			fmt.Fprintf(&b, "  %s (%s)\n", q.Text, q.ID)
			for _, opt := range q.Options {
				fmt.Fprintf(&b, "    - %s: %s\n", opt.Value, opt.Label)
			}
		}
	}
	return b.String(), nil
}

// execHistory lists recent queries, newest first.
func (s *Server) execHistory() (string, error) {
	items := s.history.ReadAll()
	if len(items) == 0 {
		return "No search history yet.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent searches (%d):\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "  • %s → %s\n", item.Query, item.TopAgentName)
	}
	return b.String(), nil
}

// sendResponse writes a JSON-RPC response to the output.
func (s *Server) sendResponse(resp *MCPResponse) {
	data, _ := json.Marshal(resp)
	fmt.Fprintln(s.out, string(data))
}

// sendError writes an error response to the output.
func (s *Server) sendError(err error) {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      nil,
		Error:   &MCPError{Code: -32700, Message: err.Error()},
	}
	s.sendResponse(resp)
}
