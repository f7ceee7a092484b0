package refine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifinder/ai-finder/internal/catalog"
)

func TestCustomPrompt_FullAssembly(t *testing.T) {
	agent := writingAgent()
	steps := Questions("write a post", agent)
	answers := Answers{
		"writing_type": {"blog"},
		"tech_level":   {"beginner"},
		"output_pref":  {"detailed"},
	}

	prompt := CustomPrompt("write a post", agent, answers, steps)

	assert.True(t, strings.HasPrefix(prompt, "# Custom Prompt for Jasper\n\n"))
	assert.Contains(t, prompt, "You are Jasper, a marketing-focused writing assistant.")
	assert.Contains(t, prompt, `"write a post"`)
	assert.Contains(t, prompt, "Context about the user's needs:")
	assert.Contains(t, prompt, "- What type of content? Blog / Article")
	assert.Contains(t, prompt, outputDetailedInstruction)
	assert.Contains(t, prompt, techBeginnerInstruction)
	assert.Contains(t, prompt, "Leverage these capabilities: Long-form blog writing, Brand voice control.")
}

func TestCustomPrompt_InstructionTable(t *testing.T) {
	agent := writingAgent()
	steps := Questions("q", agent)

	cases := map[string]string{
		"steps":    outputStepsInstruction,
		"summary":  outputSummaryInstruction,
		"detailed": outputDetailedInstruction,
		"template": outputTemplateInstruction,
		"other":    outputDefaultInstruction,
		"":         outputDefaultInstruction,
	}
	for pref, want := range cases {
		answers := Answers{}
		if pref != "" {
			answers["output_pref"] = []string{pref}
		}
		prompt := CustomPrompt("do the thing", agent, answers, steps)
		assert.Contains(t, prompt, want, "output_pref=%q", pref)
	}
}

func TestCustomPrompt_TechLevelUnsetAddsNoInstruction(t *testing.T) {
	agent := writingAgent()
	steps := Questions("q", agent)

	prompt := CustomPrompt("do the thing", agent, Answers{}, steps)
	assert.NotContains(t, prompt, techBeginnerInstruction)
	assert.NotContains(t, prompt, techIntermediateInstruction)
	assert.NotContains(t, prompt, techExpertInstruction)
}

func TestCustomPrompt_CapabilitiesCappedAtFive(t *testing.T) {
	agent := &catalog.Agent{
		Name:        "Many",
		Category:    catalog.CategoryWriting,
		Description: "A test agent.",
		Capabilities: []string{
			"One", "Two", "Three", "Four", "Five", "Six", "Seven",
		},
	}
	steps := Questions("q", agent)

	prompt := CustomPrompt("q", agent, Answers{}, steps)
	assert.Contains(t, prompt, "Leverage these capabilities: One, Two, Three, Four, Five.")
	assert.NotContains(t, prompt, "Six")
}

func TestCustomPrompt_StableWithinCall(t *testing.T) {
	agent := writingAgent()
	steps := Questions("q", agent)
	answers := Answers{
		"writing_type": {"blog", "email"},
		"writing_tone": {"casual"},
		"tech_level":   {"expert"},
	}

	first := CustomPrompt("q", agent, answers, steps)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CustomPrompt("q", agent, answers, steps))
	}
}

func TestSummaryText_OmitsUnanswered(t *testing.T) {
	agent := writingAgent()
	steps := Questions("ship the launch post", agent)
	answers := Answers{
		"writing_length": {"short"},
		"writing_tone":   {}, // toggled on and off again
	}

	summary := SummaryText("ship the launch post", agent, answers, steps)
	lines := strings.Split(summary, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, `Using **Jasper** to: "ship the launch post"`, lines[0])
	assert.Equal(t, "How long should the output be? → Short (< 200 words)", lines[1])
}

func TestLabelFor_FallsBackToRawValue(t *testing.T) {
	q := Question{ID: "x", Text: "X?", Options: []Option{{Label: "A", Value: "a"}}}
	assert.Equal(t, "A", labelFor(q, "a"))
	assert.Equal(t, "mystery", labelFor(q, "mystery"))
}
