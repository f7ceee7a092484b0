package match

import (
	"fmt"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/sanitize"
)

// GeneratePrompt produces the initial optimized prompt for an agent. The
// query is sanitized before being embedded; everything else is a fixed
// template.
func GeneratePrompt(rawQuery string, agent *catalog.Agent) string {
	cleanQuery := sanitize.Query(rawQuery)

	body := fmt.Sprintf(`You are an expert assistant. The user needs help with the following:

"%s"

Please provide a detailed, actionable response. Break down the problem into clear steps. If this involves building something, provide architecture recommendations, key implementation details, and potential challenges to watch out for. If this involves content creation, provide structured output with examples. Be thorough but concise.`, cleanQuery)

	return fmt.Sprintf("# Optimized Prompt for %s\n\n%s", agent.Name, body)
}
