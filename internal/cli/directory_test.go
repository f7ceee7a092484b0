package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aifinder/ai-finder/internal/catalog"
)

func TestNewDirectoryCmd(t *testing.T) {
	cmd := NewDirectoryCmd()

	if cmd == nil {
		t.Fatal("NewDirectoryCmd() returned nil")
	}
	for _, flag := range []string{"search", "category", "json"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Flag %q not registered", flag)
		}
	}
	if len(cmd.Aliases) == 0 || cmd.Aliases[0] != "dir" {
		t.Errorf("Expected alias 'dir', got %v", cmd.Aliases)
	}
}

func TestDirectoryListsAllAgents(t *testing.T) {
	isolate(t)

	cmd := NewDirectoryCmd()
	cmd.SetArgs([]string{"--json"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var agents []catalog.Agent
	if err := json.Unmarshal(buf.Bytes(), &agents); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(agents) != len(catalog.Default().Agents()) {
		t.Errorf("Listed %d agents, want %d", len(agents), len(catalog.Default().Agents()))
	}
}

func TestDirectoryCategoryFilter(t *testing.T) {
	isolate(t)

	cmd := NewDirectoryCmd()
	cmd.SetArgs([]string{"--category", "Writing", "--json"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var agents []catalog.Agent
	if err := json.Unmarshal(buf.Bytes(), &agents); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(agents) == 0 {
		t.Fatal("Expected Writing agents")
	}
	for _, a := range agents {
		if a.Category != catalog.CategoryWriting {
			t.Errorf("Agent %s has category %s, want Writing", a.ID, a.Category)
		}
	}
}

func TestDirectoryUnknownCategory(t *testing.T) {
	isolate(t)

	cmd := NewDirectoryCmd()
	cmd.SetArgs([]string{"--category", "Alchemy"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestDirectorySearch(t *testing.T) {
	isolate(t)

	cmd := NewDirectoryCmd()
	cmd.SetArgs([]string{"--search", "claude"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Claude") {
		t.Errorf("Search output missing Claude:\n%s", buf.String())
	}
}
