package match

import (
	"strings"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/sanitize"
)

// buildIntentKeywords gate the stack recommender: a stack only makes sense
// when the user is constructing software.
var buildIntentKeywords = []string{
	"build", "create", "make", "develop", "website", "web", "app",
	"application", "platform", "site", "project", "saas", "tool",
	"startup", "mvp", "prototype",
}

// stackKeywordWeight is the score per stack-template keyword found in the query.
const stackKeywordWeight = 2

// RecommendStack suggests a tech stack for a build-intent query.
//
// Returns nil for empty queries and for queries with no build intent. When
// build intent is detected but no template keyword matches, the first
// template in catalog order is the documented default.
func (e *Engine) RecommendStack(rawQuery string) *catalog.TechStack {
	clean := sanitize.Query(rawQuery)
	if clean == "" {
		return nil
	}

	q := strings.ToLower(clean)

	buildIntent := false
	for _, kw := range buildIntentKeywords {
		if strings.Contains(q, kw) {
			buildIntent = true
			break
		}
	}
	if !buildIntent {
		return nil
	}

	stacks := e.catalog.Stacks()
	var best *catalog.TechStack
	bestScore := 0
	for i := range stacks {
		score := 0
		for _, kw := range stacks[i].Keywords {
			if strings.Contains(q, kw) {
				score += stackKeywordWeight
			}
		}
		if score > bestScore {
			bestScore = score
			best = &stacks[i]
		}
	}

	if best == nil && len(stacks) > 0 {
		best = &stacks[0]
	}
	return best
}
