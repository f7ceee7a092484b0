/*
Package match implements the query-to-agent scoring engine, the tech-stack
recommender, and the initial prompt generator.

All functions are pure over a catalog snapshot: they sanitize their input,
never fail, and degrade to empty results for queries that match nothing.
*/
package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/sanitize"
)

// Scoring weights. A multi-word keyword is a stronger signal than a single
// word; a category name in the query is the strongest.
const (
	singleKeywordWeight = 2.0
	multiKeywordWeight  = 3.0
	categoryWeight      = 4.0
	capabilityWeight    = 1.5
	bestForWeight       = 2.0

	// defaultMaxResults caps the ranked list returned to callers unless the
	// engine is built with an explicit limit.
	defaultMaxResults = 5

	// maxReasons caps how many matched reasons are woven into the
	// reasoning sentence.
	maxReasons = 3

	// confidenceDivisor normalizes a raw score to a display percentage.
	// It is an assumed ceiling, not a guarantee: agents matching many
	// rules can exceed it, which is why Confidence caps at 99.
	confidenceDivisor = 15.0

	// minContainedWordLen filters out short query words for the
	// word-inside-capability test ("a", "the", "for" would match everything).
	minContainedWordLen = 3
)

// Result is the scored, reasoned association of one agent to one query.
type Result struct {
	Agent     catalog.Agent `json:"agent"`
	Score     float64       `json:"score"`
	Reasoning string        `json:"reasoning"`
}

// Engine scores queries against a fixed catalog snapshot.
type Engine struct {
	catalog    *catalog.Catalog
	maxResults int
}

// NewEngine creates an engine over the given catalog with the default
// result limit of five.
func NewEngine(c *catalog.Catalog) *Engine {
	return NewEngineWithLimit(c, defaultMaxResults)
}

// NewEngineWithLimit creates an engine that returns at most maxResults
// ranked agents. Non-positive limits fall back to the default.
func NewEngineWithLimit(c *catalog.Catalog, maxResults int) *Engine {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Engine{catalog: c, maxResults: maxResults}
}

// AnalyzeQuery ranks catalog agents against a free-text query.
//
// The returned list holds at most the engine's result limit, descending by
// score, every score strictly positive. Agents with equal scores keep
// catalog order. An empty or whitespace-only query yields an empty list.
func (e *Engine) AnalyzeQuery(rawQuery string) []Result {
	clean := sanitize.Query(rawQuery)
	if clean == "" {
		return nil
	}

	q := strings.ToLower(clean)
	words := strings.Fields(q)

	var scored []Result
	for _, agent := range e.catalog.Agents() {
		score, reasons := scoreAgent(agent, q, words)
		if score <= 0 {
			continue
		}
		scored = append(scored, Result{
			Agent:     agent,
			Score:     score,
			Reasoning: buildReasoning(agent, reasons),
		})
	}

	// Stable sort: equal scores keep catalog order by contract.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > e.maxResults {
		scored = scored[:e.maxResults]
	}
	return scored
}

// scoreAgent accumulates the weighted rule hits for one agent.
func scoreAgent(agent catalog.Agent, q string, words []string) (float64, []string) {
	var score float64
	var reasons []string

	for _, keyword := range agent.Keywords {
		if strings.Contains(q, keyword) {
			if strings.Contains(keyword, " ") {
				score += multiKeywordWeight
			} else {
				score += singleKeywordWeight
			}
			reasons = append(reasons, fmt.Sprintf("Matches your need for %q", keyword))
		}
	}

	if strings.Contains(q, strings.ToLower(string(agent.Category))) {
		score += categoryWeight
		reasons = append(reasons, fmt.Sprintf("Directly relevant to %s", agent.Category))
	}

	for _, cap := range agent.Capabilities {
		if containsOrContained(q, words, strings.ToLower(cap)) {
			score += capabilityWeight
			reasons = append(reasons, fmt.Sprintf("Offers %s", cap))
		}
	}

	for _, bf := range agent.BestFor {
		if containsOrContained(q, words, strings.ToLower(bf)) {
			score += bestForWeight
			reasons = append(reasons, fmt.Sprintf("Best suited for %s", bf))
		}
	}

	return score, reasons
}

// containsOrContained reports whether target appears in the query, or any
// query word longer than minContainedWordLen appears inside target.
func containsOrContained(q string, words []string, target string) bool {
	if strings.Contains(q, target) {
		return true
	}
	for _, w := range words {
		if len(w) > minContainedWordLen && strings.Contains(target, w) {
			return true
		}
	}
	return false
}

// buildReasoning deduplicates the matched reasons (first occurrence wins),
// keeps at most three, and joins them into a sentence. Agents that scored
// without a reason get a generic fallback.
func buildReasoning(agent catalog.Agent, reasons []string) string {
	seen := make(map[string]bool, len(reasons))
	unique := reasons[:0]
	for _, r := range reasons {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}

	if len(unique) == 0 {
		return fmt.Sprintf("%s is a versatile tool that could help with your needs.", agent.Name)
	}
	if len(unique) > maxReasons {
		unique = unique[:maxReasons]
	}
	return strings.Join(unique, ". ") + "."
}

// Confidence converts a raw score into a display percentage,
// min(round(score/15*100), 99). Scores are not probabilities; the divisor is
// a fixed normalization that intentionally caps the display at 99.
func Confidence(score float64) int {
	pct := int(math.Round(score / confidenceDivisor * 100))
	if pct > 99 {
		return 99
	}
	return pct
}
