package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistoryEmpty(t *testing.T) {
	isolate(t)

	cmd := NewHistoryCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No search history yet") {
		t.Errorf("Expected empty-history message, got:\n%s", buf.String())
	}
}

func TestHistoryClear(t *testing.T) {
	isolate(t)

	matchCmd := NewMatchCmd()
	matchCmd.SetArgs([]string{"--json", "write", "some", "marketing", "copy"})
	matchCmd.SetOut(new(bytes.Buffer))
	matchCmd.SetErr(new(bytes.Buffer))
	if err := matchCmd.Execute(); err != nil {
		t.Fatalf("match failed: %v", err)
	}

	clearCmd := NewHistoryCmd()
	clearCmd.SetArgs([]string{"--clear"})
	clearCmd.SetOut(new(bytes.Buffer))
	clearCmd.SetErr(new(bytes.Buffer))
	if err := clearCmd.Execute(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	listCmd := NewHistoryCmd()
	buf := new(bytes.Buffer)
	listCmd.SetOut(buf)
	listCmd.SetErr(buf)
	if err := listCmd.Execute(); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No search history yet") {
		t.Errorf("History not cleared:\n%s", buf.String())
	}
}
