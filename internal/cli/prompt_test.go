package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptCommand(t *testing.T) {
	isolate(t)

	cmd := NewPromptCmd()
	cmd.SetArgs([]string{"claude", "summarize", "my", "meeting", "notes"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Optimized Prompt for Claude") {
		t.Errorf("Missing prompt title:\n%s", out)
	}
	if !strings.Contains(out, "summarize my meeting notes") {
		t.Errorf("Missing query in prompt:\n%s", out)
	}
}

func TestPromptCommandUnknownAgent(t *testing.T) {
	isolate(t)

	cmd := NewPromptCmd()
	cmd.SetArgs([]string{"no-such-agent", "anything"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for unknown agent")
	}
}

func TestPromptCommandSave(t *testing.T) {
	isolate(t)

	cmd := NewPromptCmd()
	cmd.SetArgs([]string{"claude", "summarize", "notes", "--save", "--title", "Notes prompt"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Saved as template 'Notes prompt'") {
		t.Errorf("Missing save confirmation:\n%s", buf.String())
	}
}
