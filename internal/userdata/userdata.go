/*
Package userdata persists user-created content in the key-value store:
saved prompt templates, per-agent reviews, and directory submissions.

Everything here is best-effort. Writes that fail are dropped and corrupt
stored data reads as empty, matching the history store's posture: the kv
store is a convenience cache, never a source of truth.
*/
package userdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aifinder/ai-finder/internal/sanitize"
	"github.com/aifinder/ai-finder/internal/storage"
)

const (
	templatesKey     = "af-templates"
	reviewKeyPrefix  = "af-reviews-"
	submissionsKey   = "af-submissions"
	maxTemplates     = 50
	maxReviews       = 50
	maxSubmissions   = 20
	maxTemplateTitle = 100
)

// Template is a saved generated prompt.
type Template struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	AgentName string `json:"agentName"`
	Prompt    string `json:"prompt"`
	Timestamp int64  `json:"timestamp"`
}

// Review is one user review of an agent.
type Review struct {
	ID        string `json:"id"`
	AgentID   string `json:"agentId"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Submission is a user-proposed directory entry awaiting review.
type Submission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Pricing     string `json:"pricing"`
	Link        string `json:"link"`
	Timestamp   int64  `json:"timestamp"`
}

// ErrInvalidRating is returned when a review rating is outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Store reads and writes user data through a key-value store.
type Store struct {
	kv  storage.Store
	now func() time.Time
}

// NewStore creates a user data store over kv.
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv, now: time.Now}
}

// SaveTemplate stores a prompt under a sanitized title, newest first,
// keeping the 50 most recent. Empty prompts are ignored.
func (s *Store) SaveTemplate(title, agentName, prompt string) {
	if prompt == "" {
		return
	}
	title = sanitize.Input(title, maxTemplateTitle)
	if title == "" {
		title = "Untitled prompt"
	}

	templates := s.Templates()
	templates = append([]Template{{
		ID:        uuid.NewString(),
		Title:     title,
		AgentName: sanitize.Input(agentName, sanitize.MaxNameLength),
		Prompt:    prompt,
		Timestamp: s.now().UnixMilli(),
	}}, templates...)
	if len(templates) > maxTemplates {
		templates = templates[:maxTemplates]
	}
	s.write(templatesKey, templates)
}

// Templates returns saved templates, newest first.
func (s *Store) Templates() []Template {
	var templates []Template
	s.read(templatesKey, &templates)
	return templates
}

// AddReview validates and stores a review for agentID. The rating must be
// 1..5 and the text must sanitize to at least 3 characters.
func (s *Store) AddReview(agentID string, rating int, text string) error {
	if msg := sanitize.Rating(rating); msg != "" {
		return ErrInvalidRating
	}
	ok, msg, clean := sanitize.Review(text)
	if !ok {
		return fmt.Errorf("invalid review: %s", msg)
	}

	reviews := s.Reviews(agentID)
	reviews = append([]Review{{
		ID:        uuid.NewString(),
		AgentID:   agentID,
		Rating:    rating,
		Text:      clean,
		Timestamp: s.now().UnixMilli(),
	}}, reviews...)
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	s.write(reviewKeyPrefix+agentID, reviews)
	return nil
}

// Reviews returns stored reviews for agentID, newest first.
func (s *Store) Reviews(agentID string) []Review {
	var reviews []Review
	s.read(reviewKeyPrefix+agentID, &reviews)
	return reviews
}

// Submit validates fields and stores a directory submission, keeping the 20
// most recent. On validation failure the field-keyed error map is returned
// and nothing is stored.
func (s *Store) Submit(fields sanitize.SubmissionFields) map[string]string {
	if errs := sanitize.Submission(fields); len(errs) > 0 {
		return errs
	}

	submissions := s.Submissions()
	submissions = append([]Submission{{
		ID:          uuid.NewString(),
		Name:        sanitize.Input(fields.Name, sanitize.MaxNameLength),
		Description: sanitize.Input(fields.Description, sanitize.MaxDescriptionLength),
		Category:    fields.Category,
		Pricing:     fields.Pricing,
		Link:        fields.Link,
		Timestamp:   s.now().UnixMilli(),
	}}, submissions...)
	if len(submissions) > maxSubmissions {
		submissions = submissions[:maxSubmissions]
	}
	s.write(submissionsKey, submissions)
	return nil
}

// Submissions returns stored submissions, newest first.
func (s *Store) Submissions() []Submission {
	var submissions []Submission
	s.read(submissionsKey, &submissions)
	return submissions
}

func (s *Store) read(key string, out any) {
	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return
	}
	// Corrupt data degrades to empty.
	_ = json.Unmarshal(raw, out)
}

func (s *Store) write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.kv.Set(key, data)
}
