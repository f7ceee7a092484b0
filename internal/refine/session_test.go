package refine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWritingSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("write a launch announcement", writingAgent())
	require.NoError(t, err)
	return s
}

func TestNewSession_RequiresQueryAndAgent(t *testing.T) {
	_, err := NewSession("", writingAgent())
	assert.ErrorIs(t, err, ErrCannotStart)

	_, err = NewSession("   <b>  </b> ", writingAgent())
	assert.ErrorIs(t, err, ErrCannotStart)

	_, err = NewSession("valid query", nil)
	assert.ErrorIs(t, err, ErrCannotStart)
}

func TestSession_HappyPath(t *testing.T) {
	s := newWritingSession(t)

	require.Equal(t, StateQuestion, s.State())
	assert.Equal(t, 0, s.StepIndex())
	require.NotNil(t, s.CurrentStep())
	assert.Equal(t, "Customize for Jasper", s.CurrentStep().Title)

	s.Continue()
	assert.Equal(t, StateQuestion, s.State())
	assert.Equal(t, 1, s.StepIndex())

	s.Continue()
	assert.Equal(t, StateSummary, s.State())
	assert.Nil(t, s.CurrentStep())
	assert.Empty(t, s.Prompt())

	s.Continue() // generate from the summary
	assert.Equal(t, StatePromptReady, s.State())
	assert.NotEmpty(t, s.Prompt())
}

func TestSession_PromptReadyIsTerminal(t *testing.T) {
	s := newWritingSession(t)
	s.Skip()
	require.Equal(t, StatePromptReady, s.State())
	frozen := s.Prompt()

	s.Continue()
	s.Skip()
	assert.False(t, s.Back())
	s.Toggle("output_pref", "steps")
	s.Generate()

	assert.Equal(t, StatePromptReady, s.State())
	assert.Equal(t, frozen, s.Prompt(), "prompt stays frozen after generation")
}

func TestSession_BackSemantics(t *testing.T) {
	s := newWritingSession(t)

	assert.True(t, s.Back(), "back from the first question exits the session")
	assert.Equal(t, StateQuestion, s.State())

	s.Continue()
	s.Continue()
	require.Equal(t, StateSummary, s.State())

	assert.False(t, s.Back())
	assert.Equal(t, StateQuestion, s.State())
	assert.Equal(t, 1, s.StepIndex())

	assert.False(t, s.Back())
	assert.Equal(t, 0, s.StepIndex())
}

func TestSession_SkipGeneratesFromPartialAnswers(t *testing.T) {
	s := newWritingSession(t)
	s.Toggle("writing_type", "blog")

	s.Skip()
	require.Equal(t, StatePromptReady, s.State())
	assert.Contains(t, s.Prompt(), "Blog / Article")
}

func TestSession_SkipWithNoAnswers(t *testing.T) {
	s := newWritingSession(t)
	s.Skip()

	require.Equal(t, StatePromptReady, s.State())
	assert.NotContains(t, s.Prompt(), "Context about the user's needs")
	assert.Contains(t, s.Prompt(), outputDefaultInstruction)
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	s := newWritingSession(t)

	s.Toggle("writing_tone", "casual")
	assert.Equal(t, []string{"casual"}, s.Answers()["writing_tone"])

	s.Toggle("writing_tone", "casual")
	assert.Empty(t, s.Answers()["writing_tone"])
}

func TestToggle_MultiSelectAccumulates(t *testing.T) {
	s := newWritingSession(t)

	s.Toggle("writing_type", "blog")
	s.Toggle("writing_type", "email")
	assert.ElementsMatch(t, []string{"blog", "email"}, s.Answers()["writing_type"])

	s.Toggle("writing_type", "blog")
	assert.Equal(t, []string{"email"}, s.Answers()["writing_type"])
}

func TestToggle_RejectsValuesOutsideWhitelist(t *testing.T) {
	s := newWritingSession(t)

	s.Toggle("writing_tone", "sarcastic")
	s.Toggle("writing_tone", "CASUAL")
	s.Toggle("unknown_question", "anything")

	assert.Empty(t, s.Answers()["writing_tone"])
	assert.Empty(t, s.Answers()["unknown_question"])
}

func TestSession_OutputPrefStepsInstructionVerbatim(t *testing.T) {
	s := newWritingSession(t)
	s.Toggle("output_pref", "steps")
	s.Skip()

	assert.Contains(t, s.Prompt(), "Present your response as a numbered step-by-step guide.")
}

func TestSession_Summary(t *testing.T) {
	s := newWritingSession(t)
	s.Toggle("writing_tone", "professional")
	s.Toggle("tech_level", "expert")

	summary := s.Summary()
	lines := strings.Split(summary, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "**Jasper**")
	assert.Contains(t, lines[0], "write a launch announcement")
	assert.Contains(t, summary, "What tone? → Professional")
	assert.Contains(t, summary, "What's your technical level? → Expert")
}
