package refine

import (
	"errors"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/sanitize"
)

// State identifies where a refinement session currently is.
type State int

const (
	// StateQuestion means the session is on a question step.
	StateQuestion State = iota
	// StateSummary shows the recap before generating.
	StateSummary
	// StatePromptReady is terminal: the custom prompt is frozen.
	StatePromptReady
)

// ErrCannotStart is returned when a session is missing its query or agent.
var ErrCannotStart = errors.New("refine: session needs a non-empty query and an agent")

// Session is one run of the refinement flow for a (query, agent) pair. It is
// owned by a single caller and holds no shared state; transitions are plain
// synchronous method calls.
type Session struct {
	query   string
	agent   *catalog.Agent
	steps   []Step
	answers Answers

	// step indexes into steps; len(steps) is the summary, len(steps)+1 the
	// frozen prompt.
	step   int
	prompt string
}

// NewSession starts a refinement session. The query is sanitized; a session
// cannot start without a non-empty sanitized query and a resolvable agent.
func NewSession(rawQuery string, agent *catalog.Agent) (*Session, error) {
	query := sanitize.Query(rawQuery)
	if query == "" || agent == nil {
		return nil, ErrCannotStart
	}
	return &Session{
		query:   query,
		agent:   agent,
		steps:   Questions(query, agent),
		answers: make(Answers),
	}, nil
}

// Steps returns the session's question steps. Built once at session start
// and immutable thereafter.
func (s *Session) Steps() []Step {
	return s.steps
}

// State reports the current machine state.
func (s *Session) State() State {
	switch {
	case s.step < len(s.steps):
		return StateQuestion
	case s.step == len(s.steps):
		return StateSummary
	default:
		return StatePromptReady
	}
}

// StepIndex returns the current question step index. Only meaningful while
// State() == StateQuestion.
func (s *Session) StepIndex() int {
	return s.step
}

// CurrentStep returns the question step the session is on, or nil outside
// the question states.
func (s *Session) CurrentStep() *Step {
	if s.State() != StateQuestion {
		return nil
	}
	return &s.steps[s.step]
}

// Toggle flips membership of value in the answer set for questionID. Values
// outside the question's whitelist are silently ignored, as is any toggle
// after the prompt has been frozen.
func (s *Session) Toggle(questionID, value string) {
	if s.State() == StatePromptReady {
		return
	}
	if !sanitize.Answer(value, ValidOptions(questionID)) {
		return
	}

	current := s.answers[questionID]
	for i, v := range current {
		if v == value {
			s.answers[questionID] = append(current[:i], current[i+1:]...)
			return
		}
	}
	s.answers[questionID] = append(current, value)
}

// Answers returns the accumulated answer map. Callers must treat it as
// read-only; mutation goes through Toggle.
func (s *Session) Answers() Answers {
	return s.answers
}

// Continue advances the flow: question step to question step, last question
// step to summary, and summary to the frozen prompt. No-op once the prompt
// is ready.
func (s *Session) Continue() {
	switch s.State() {
	case StateQuestion:
		s.step++
	case StateSummary:
		s.Generate()
	}
}

// Generate freezes the custom prompt and moves to the terminal state. Safe
// to call only from the summary; elsewhere it is ignored.
func (s *Session) Generate() {
	if s.State() != StateSummary {
		return
	}
	s.prompt = CustomPrompt(s.query, s.agent, s.answers, s.steps)
	s.step = len(s.steps) + 1
}

// Skip jumps straight to the frozen prompt from any question step or the
// summary, generating from whatever answers exist so far.
func (s *Session) Skip() {
	if s.State() == StatePromptReady {
		return
	}
	s.prompt = CustomPrompt(s.query, s.agent, s.answers, s.steps)
	s.step = len(s.steps) + 1
}

// Back moves one step earlier. From the first question step it reports that
// the session is exited (the caller navigates away). The frozen prompt state
// is terminal and ignores Back.
func (s *Session) Back() (exited bool) {
	switch s.State() {
	case StatePromptReady:
		return false
	case StateQuestion:
		if s.step == 0 {
			return true
		}
	}
	s.step--
	return false
}

// Prompt returns the frozen custom prompt, or "" before generation.
func (s *Session) Prompt() string {
	return s.prompt
}

// Summary builds the human-readable recap of the session so far.
func (s *Session) Summary() string {
	return SummaryText(s.query, s.agent, s.answers, s.steps)
}

// Query returns the sanitized query the session was started with.
func (s *Session) Query() string {
	return s.query
}

// Agent returns the agent the session refines for.
func (s *Session) Agent() *catalog.Agent {
	return s.agent
}
