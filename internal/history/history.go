/*
Package history records past queries and their top-matched agent.

Records live in the injected key-value store as a JSON array, newest first.
The store is untrusted: every record is schema-checked on read and anything
malformed is dropped silently, so a corrupted or tampered store degrades to
an empty one rather than an error.
*/
package history

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aifinder/ai-finder/internal/sanitize"
	"github.com/aifinder/ai-finder/internal/storage"
)

const (
	// storageKey is the kv key holding the history array.
	storageKey = "ai-finder-history"

	// defaultMaxStored caps how many records the writer keeps unless the
	// store is built with an explicit limit.
	defaultMaxStored = 50

	// maxRead caps how many records a read will consider, regardless of
	// what is actually stored.
	maxRead = 100

	// maxAgentNameLength bounds the persisted agent name.
	maxAgentNameLength = 200
)

// Item is one persisted history record.
type Item struct {
	ID           string `json:"id"`
	Query        string `json:"query"`
	Timestamp    int64  `json:"timestamp"`
	TopAgentName string `json:"topAgentName"`
}

// valid reports whether a decoded record satisfies the persisted schema:
// non-empty id, query within 1..500 characters, positive timestamp, agent
// name within 200 characters. Lengths count runes, matching the writer's
// rune-based truncation.
func (i Item) valid() bool {
	queryLen := utf8.RuneCountInString(i.Query)
	return i.ID != "" &&
		queryLen >= 1 && queryLen <= sanitize.MaxQueryLength &&
		i.Timestamp > 0 &&
		utf8.RuneCountInString(i.TopAgentName) <= maxAgentNameLength
}

// Store reads and writes search history through a key-value store.
type Store struct {
	kv        storage.Store
	now       func() time.Time
	maxStored int
}

// NewStore creates a history store over kv keeping the default 50 records.
func NewStore(kv storage.Store) *Store {
	return NewStoreWithLimit(kv, defaultMaxStored)
}

// NewStoreWithLimit creates a history store keeping at most maxStored
// records. Non-positive limits fall back to the default.
func NewStoreWithLimit(kv storage.Store, maxStored int) *Store {
	if maxStored <= 0 {
		maxStored = defaultMaxStored
	}
	return &Store{kv: kv, now: time.Now, maxStored: maxStored}
}

// Append prepends a record for the query and its top agent, truncating to
// the store's cap. Queries that sanitize to empty are not recorded.
// Storage failures are swallowed: history is cosmetic.
func (s *Store) Append(query, topAgentName string) {
	clean := sanitize.Query(query)
	if clean == "" {
		return
	}

	if utf8.RuneCountInString(topAgentName) > maxAgentNameLength {
		topAgentName = string([]rune(topAgentName)[:maxAgentNameLength])
	}

	items := s.ReadAll()
	item := Item{
		ID:           uuid.NewString(),
		Query:        clean,
		Timestamp:    s.now().UnixMilli(),
		TopAgentName: topAgentName,
	}
	items = append([]Item{item}, items...)
	if len(items) > s.maxStored {
		items = items[:s.maxStored]
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = s.kv.Set(storageKey, data)
}

// ReadAll returns the stored history, newest first. Invalid JSON or records
// violating the schema are dropped; the result is capped at 100 entries.
func (s *Store) ReadAll() []Item {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil || !ok {
		return nil
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil
	}

	// Decode record by record: one malformed entry must not poison the rest.
	items := make([]Item, 0, len(rawItems))
	for _, rawItem := range rawItems {
		var item Item
		if err := json.Unmarshal(rawItem, &item); err != nil || !item.valid() {
			continue
		}
		items = append(items, item)
		if len(items) == maxRead {
			break
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// Clear removes all history.
func (s *Store) Clear() {
	_ = s.kv.Remove(storageKey)
}
