/*
Package search provides full-text search over the agent directory using an
in-memory Bleve index.

The match engine keeps its own fixed-weight scoring for recommendations;
this index serves free-text directory browsing, where relevance ranking and
fuzzy term matching matter more than reproducible weights.
*/
package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/aifinder/ai-finder/internal/catalog"
)

// Hit is one directory search result.
type Hit struct {
	AgentID     string
	Name        string
	Description string
	Category    string
	Score       float64
}

// Indexer manages the directory search index.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer builds an in-memory index over every agent in the catalog.
func NewIndexer(c *catalog.Catalog) (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	batch := index.NewBatch()
	for _, agent := range c.Agents() {
		doc := map[string]interface{}{
			"name":        agent.Name,
			"description": agent.Description,
			"category":    string(agent.Category),
			"keywords":    strings.Join(agent.Keywords, " "),
		}
		if err := batch.Index(agent.ID, doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index agent %s: %w", agent.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("failed to batch index agents: %w", err)
	}

	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping for agent documents.
func buildIndexMapping() mapping.IndexMapping {
	agentMapping := bleve.NewDocumentMapping()

	agentMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	agentMapping.AddFieldMappingsAt("description", bleve.NewTextFieldMapping())
	agentMapping.AddFieldMappingsAt("category", bleve.NewTextFieldMapping())
	agentMapping.AddFieldMappingsAt("keywords", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", agentMapping)
	return indexMapping
}

// Search runs a relevance-ranked match query over the directory.
func (i *Indexer) Search(query string, limit int) ([]Hit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	searchRequest := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	searchRequest.Fields = []string{"name", "description", "category"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	hits := make([]Hit, 0, len(results.Hits))
	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		description, _ := hit.Fields["description"].(string)
		category, _ := hit.Fields["category"].(string)
		hits = append(hits, Hit{
			AgentID:     hit.ID,
			Name:        name,
			Description: description,
			Category:    category,
			Score:       hit.Score,
		})
	}
	return hits, nil
}

// Count returns the number of indexed agents.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return docCount, nil
}

// Close releases the index.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}
	return nil
}
