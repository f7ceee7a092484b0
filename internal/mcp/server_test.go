package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/history"
	"github.com/aifinder/ai-finder/internal/match"
	"github.com/aifinder/ai-finder/internal/storage"
)

func newTestServer(in string) (*Server, *bytes.Buffer) {
	c := catalog.Default()
	s := NewServer(c, match.NewEngine(c), history.NewStore(storage.NewMemoryStore()))
	out := &bytes.Buffer{}
	s.in = strings.NewReader(in)
	s.out = out
	return s, out
}

// responses decodes one JSON-RPC response per output line.
func responses(t *testing.T, out *bytes.Buffer) []MCPResponse {
	t.Helper()

	var resps []MCPResponse
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var resp MCPResponse
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		resps = append(resps, resp)
	}
	return resps
}

// callText extracts the text content of a tools/call result.
func callText(t *testing.T, resp MCPResponse) string {
	t.Helper()

	require.Nil(t, resp.Error)
	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	content, ok := result["content"].([]interface{})
	require.True(t, ok)
	require.Len(t, content, 1)
	first, ok := content[0].(map[string]interface{})
	require.True(t, ok)
	text, ok := first["text"].(string)
	require.True(t, ok)
	return text
}

func callRequest(id int, tool string, args map[string]interface{}) string {
	params := map[string]interface{}{"name": tool, "arguments": args}
	rawParams, _ := json.Marshal(params)
	req, _ := json.Marshal(MCPRequest{JSONRPC: "2.0", ID: id, Method: "tools/call", Params: rawParams})
	return string(req)
}

func TestInitialize(t *testing.T) {
	s, out := newTestServer(`{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n")
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	result := resps[0].Result.(map[string]interface{})
	assert.Equal(t, "2024-11-05", result["protocolVersion"])
	serverInfo := result["serverInfo"].(map[string]interface{})
	assert.Equal(t, "ai-finder", serverInfo["name"])
}

func TestToolsList(t *testing.T) {
	s, out := newTestServer(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n")
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	result := resps[0].Result.(map[string]interface{})
	tools := result["tools"].([]interface{})
	require.Len(t, tools, 5)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.(map[string]interface{})["name"].(string)
	}
	assert.ElementsMatch(t, names,
		[]string{"finder_match", "finder_stack", "finder_prompt", "finder_refine", "finder_history"})
}

func TestUnknownMethod(t *testing.T) {
	s, out := newTestServer(`{"jsonrpc":"2.0","id":3,"method":"resources/list"}` + "\n")
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32601, resps[0].Error.Code)
}

func TestInvalidJSON(t *testing.T) {
	s, out := newTestServer("this is not json\n")
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32700, resps[0].Error.Code)
}

func TestFinderMatch(t *testing.T) {
	in := callRequest(4, "finder_match", map[string]interface{}{
		"query": "I want to build a SaaS dashboard with real-time analytics",
	}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 1)
	text := callText(t, resps[0])
	assert.Contains(t, text, "Top matches")
	assert.Contains(t, text, "confidence")

	// The match is recorded in history.
	items := s.history.ReadAll()
	require.Len(t, items, 1)
	assert.Equal(t, "I want to build a SaaS dashboard with real-time analytics", items[0].Query)
}

func TestFinderMatch_EmptyQuery(t *testing.T) {
	in := callRequest(5, "finder_match", map[string]interface{}{"query": "  "}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32000, resps[0].Error.Code)
}

func TestFinderStack(t *testing.T) {
	in := callRequest(6, "finder_stack", map[string]interface{}{
		"query": "build an online store",
	}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	text := callText(t, resps[0])
	assert.Contains(t, text, "Recommended stack")
	assert.Contains(t, text, "Frontend")
}

func TestFinderStack_NoBuildIntent(t *testing.T) {
	in := callRequest(7, "finder_stack", map[string]interface{}{
		"query": "summarize this legal document",
	}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	text := callText(t, resps[0])
	assert.Contains(t, text, "No build intent")
}

func TestFinderPrompt(t *testing.T) {
	in := callRequest(8, "finder_prompt", map[string]interface{}{
		"agent": "claude",
		"query": "write a summary of my meeting notes",
	}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	text := callText(t, resps[0])
	assert.Contains(t, text, "# Optimized Prompt for Claude")
	assert.Contains(t, text, "write a summary of my meeting notes")
}

func TestFinderPrompt_UnknownAgent(t *testing.T) {
	in := callRequest(9, "finder_prompt", map[string]interface{}{
		"agent": "no-such-agent",
		"query": "anything",
	}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32000, resps[0].Error.Code)
	assert.Contains(t, resps[0].Error.Message, "no-such-agent")
}

func TestFinderRefine(t *testing.T) {
	in := callRequest(10, "finder_refine", map[string]interface{}{"agent": "jasper"}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	text := callText(t, resps[0])
	assert.Contains(t, text, "Customize for Jasper")
	assert.Contains(t, text, "Your preferences")
	assert.Contains(t, text, "tech_level")
}

func TestFinderHistory(t *testing.T) {
	s, out := newTestServer(callRequest(11, "finder_history", nil) + "\n")
	s.history.Append("an earlier query", "Claude")
	require.NoError(t, s.Run())

	resps := responses(t, out)
	text := callText(t, resps[0])
	assert.Contains(t, text, "an earlier query")
	assert.Contains(t, text, "Claude")
}

func TestFinderHistory_Empty(t *testing.T) {
	s, out := newTestServer(callRequest(12, "finder_history", nil) + "\n")
	require.NoError(t, s.Run())

	resps := responses(t, out)
	assert.Contains(t, callText(t, resps[0]), "No search history yet")
}

func TestUnknownTool(t *testing.T) {
	in := callRequest(13, "finder_teleport", map[string]interface{}{}) + "\n"
	s, out := newTestServer(in)
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32602, resps[0].Error.Code)
}

func TestMultipleRequestsOneSession(t *testing.T) {
	var in strings.Builder
	in.WriteString(`{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n")
	in.WriteString(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n")
	for i := 3; i <= 5; i++ {
		in.WriteString(callRequest(i, "finder_match", map[string]interface{}{
			"query": fmt.Sprintf("help me write code, attempt %d", i),
		}) + "\n")
	}

	s, out := newTestServer(in.String())
	require.NoError(t, s.Run())

	resps := responses(t, out)
	require.Len(t, resps, 5)
	for _, resp := range resps {
		assert.Nil(t, resp.Error)
	}
}
