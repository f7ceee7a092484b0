package refine

import (
	"fmt"
	"strings"

	"github.com/aifinder/ai-finder/internal/catalog"
)

// maxPromptCapabilities bounds how many agent capabilities the prompt cites.
const maxPromptCapabilities = 5

// Output-structure instructions keyed by the output_pref answer.
const (
	outputStepsInstruction    = "Present your response as a numbered step-by-step guide."
	outputSummaryInstruction  = "Keep your response concise and to the point."
	outputDetailedInstruction = "Provide a comprehensive, detailed response with examples."
	outputTemplateInstruction = "Provide a ready-to-use template or boilerplate."
	outputDefaultInstruction  = "Be thorough but concise."
)

// Technical-level instructions keyed by the tech_level answer.
const (
	techBeginnerInstruction     = "Explain concepts simply, avoid jargon, and include beginner-friendly context."
	techIntermediateInstruction = "Assume some familiarity with the topic. Include relevant technical details."
	techExpertInstruction       = "Be direct and technical. Skip basic explanations."
)

// outputInstruction maps an output_pref value to its instruction, with an
// explicit default arm for unset or unknown values.
func outputInstruction(pref string) string {
	switch pref {
	case "steps":
		return outputStepsInstruction
	case "summary":
		return outputSummaryInstruction
	case "detailed":
		return outputDetailedInstruction
	case "template":
		return outputTemplateInstruction
	default:
		return outputDefaultInstruction
	}
}

// techInstruction maps a tech_level value to its instruction; unset or
// unknown levels add no instruction.
func techInstruction(level string) string {
	switch level {
	case "beginner":
		return techBeginnerInstruction
	case "intermediate":
		return techIntermediateInstruction
	case "expert":
		return techExpertInstruction
	default:
		return ""
	}
}

// answeredLines resolves every answered question to "<question text><sep><labels>"
// lines, iterating questions in step order so output is stable within a call.
func answeredLines(answers Answers, steps []Step, sep string) []string {
	var lines []string
	for _, step := range steps {
		for _, q := range step.Questions {
			values := answers[q.ID]
			if len(values) == 0 {
				continue
			}
			labels := make([]string, 0, len(values))
			for _, v := range values {
				labels = append(labels, labelFor(q, v))
			}
			lines = append(lines, q.Text+sep+strings.Join(labels, ", "))
		}
	}
	return lines
}

// labelFor resolves an option value to its human-readable label, falling
// back to the raw value for anything unrecognized.
func labelFor(q Question, value string) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// first returns the first selected value for a question ID, or "".
func first(answers Answers, questionID string) string {
	if vals := answers[questionID]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// CustomPrompt synthesizes a prompt tailored to the agent, the original
// query, and the refinement answers. Deterministic given its inputs.
func CustomPrompt(query string, agent *catalog.Agent, answers Answers, steps []Step) string {
	contextParts := answeredLines(answers, steps, " ")

	output := outputInstruction(first(answers, "output_pref"))
	tech := techInstruction(first(answers, "tech_level"))

	contextSection := ""
	if len(contextParts) > 0 {
		bullets := make([]string, 0, len(contextParts))
		for _, p := range contextParts {
			bullets = append(bullets, "- "+p)
		}
		contextSection = "\n\nContext about the user's needs:\n" + strings.Join(bullets, "\n")
	}

	instructions := output
	if tech != "" {
		instructions += " " + tech
	}

	capabilitiesSection := ""
	if len(agent.Capabilities) > 0 {
		caps := agent.Capabilities
		if len(caps) > maxPromptCapabilities {
			caps = caps[:maxPromptCapabilities]
		}
		capabilitiesSection = fmt.Sprintf("\nLeverage these capabilities: %s.", strings.Join(caps, ", "))
	}

	body := fmt.Sprintf(`You are %s, %s

The user needs help with the following:

"%s"%s

%s%s

Provide a detailed, actionable response. If this involves building something, include architecture recommendations and key implementation details. If this involves content, provide structured output with examples.`,
		agent.Name, strings.ToLower(agent.Description), query, contextSection, instructions, capabilitiesSection)

	return fmt.Sprintf("# Custom Prompt for %s\n\n%s", agent.Name, body)
}

// SummaryText builds a line-oriented recap of the refinement session: the
// agent and query first, then one line per answered question.
func SummaryText(query string, agent *catalog.Agent, answers Answers, steps []Step) string {
	parts := []string{fmt.Sprintf("Using **%s** to: %q", agent.Name, query)}
	parts = append(parts, answeredLines(answers, steps, " → ")...)
	return strings.Join(parts, "\n")
}
