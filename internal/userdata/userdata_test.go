package userdata

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifinder/ai-finder/internal/sanitize"
	"github.com/aifinder/ai-finder/internal/storage"
)

func newTestStore() (*Store, *storage.MemoryStore) {
	kv := storage.NewMemoryStore()
	s := NewStore(kv)

	var tick int64
	s.now = func() time.Time {
		tick++
		return time.UnixMilli(1700000000000 + tick)
	}
	return s, kv
}

func TestSaveTemplate(t *testing.T) {
	s, _ := newTestStore()

	s.SaveTemplate("My prompt", "Claude", "# Optimized Prompt\n\ndo things")
	s.SaveTemplate("<b>Second</b>", "ChatGPT", "another prompt")

	templates := s.Templates()
	require.Len(t, templates, 2)
	assert.Equal(t, "Second", templates[0].Title, "newest first, title sanitized")
	assert.Equal(t, "My prompt", templates[1].Title)
	assert.Equal(t, "Claude", templates[1].AgentName)
	assert.NotEmpty(t, templates[0].ID)
}

func TestSaveTemplate_EmptyPromptIgnored(t *testing.T) {
	s, _ := newTestStore()

	s.SaveTemplate("Title", "Agent", "")
	assert.Empty(t, s.Templates())
}

func TestSaveTemplate_UntitledFallback(t *testing.T) {
	s, _ := newTestStore()

	s.SaveTemplate("   ", "Agent", "prompt body")
	templates := s.Templates()
	require.Len(t, templates, 1)
	assert.Equal(t, "Untitled prompt", templates[0].Title)
}

func TestSaveTemplate_CapsAtFifty(t *testing.T) {
	s, _ := newTestStore()

	for i := 1; i <= 51; i++ {
		s.SaveTemplate(fmt.Sprintf("template %d", i), "Agent", "body")
	}

	templates := s.Templates()
	require.Len(t, templates, 50)
	assert.Equal(t, "template 51", templates[0].Title)
	assert.Equal(t, "template 2", templates[49].Title)
}

func TestAddReview(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.AddReview("claude", 5, "Great for long documents."))
	require.NoError(t, s.AddReview("claude", 3, "  Decent   <i>overall</i>  "))

	reviews := s.Reviews("claude")
	require.Len(t, reviews, 2)
	assert.Equal(t, 3, reviews[0].Rating)
	assert.Equal(t, "Decent overall", reviews[0].Text)
	assert.Equal(t, "claude", reviews[0].AgentID)

	assert.Empty(t, s.Reviews("chatgpt"), "reviews are per agent")
}

func TestAddReview_Validation(t *testing.T) {
	s, _ := newTestStore()

	assert.ErrorIs(t, s.AddReview("claude", 0, "fine text"), ErrInvalidRating)
	assert.ErrorIs(t, s.AddReview("claude", 6, "fine text"), ErrInvalidRating)
	assert.Error(t, s.AddReview("claude", 4, ""))
	assert.Error(t, s.AddReview("claude", 4, "ab"))
	assert.Empty(t, s.Reviews("claude"))
}

func TestAddReview_CapsAtFifty(t *testing.T) {
	s, _ := newTestStore()

	for i := 1; i <= 51; i++ {
		require.NoError(t, s.AddReview("claude", 4, fmt.Sprintf("review number %d", i)))
	}

	reviews := s.Reviews("claude")
	require.Len(t, reviews, 50)
	assert.Equal(t, "review number 51", reviews[0].Text)
}

func TestSubmit(t *testing.T) {
	s, _ := newTestStore()

	errs := s.Submit(sanitize.SubmissionFields{
		Name:        "New Tool",
		Description: "Does something genuinely useful for developers.",
		Category:    "Coding",
		Pricing:     "freemium",
		Link:        "https://example.com/tool",
	})
	assert.Nil(t, errs)

	submissions := s.Submissions()
	require.Len(t, submissions, 1)
	assert.Equal(t, "New Tool", submissions[0].Name)
	assert.Equal(t, "freemium", submissions[0].Pricing)
}

func TestSubmit_InvalidFieldsNotStored(t *testing.T) {
	s, _ := newTestStore()

	errs := s.Submit(sanitize.SubmissionFields{
		Name:        "",
		Description: "too short",
		Category:    "Coding",
		Pricing:     "blood money",
		Link:        "ftp://example.com",
	})
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "name")
	assert.Empty(t, s.Submissions())
}

func TestSubmit_CapsAtTwenty(t *testing.T) {
	s, _ := newTestStore()

	for i := 1; i <= 21; i++ {
		errs := s.Submit(sanitize.SubmissionFields{
			Name:        fmt.Sprintf("Tool %d", i),
			Description: "A sufficiently long description of the tool.",
			Category:    "Coding",
			Pricing:     "free",
			Link:        "https://example.com",
		})
		require.Nil(t, errs)
	}

	submissions := s.Submissions()
	require.Len(t, submissions, 20)
	assert.Equal(t, "Tool 21", submissions[0].Name)
}

func TestCorruptDataReadsAsEmpty(t *testing.T) {
	s, kv := newTestStore()

	require.NoError(t, kv.Set("af-templates", []byte("{broken")))
	assert.Empty(t, s.Templates())

	require.NoError(t, kv.Set("af-reviews-claude", []byte(strings.Repeat("x", 10))))
	assert.Empty(t, s.Reviews("claude"))
}
