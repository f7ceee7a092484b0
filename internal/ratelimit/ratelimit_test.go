package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifinder/ai-finder/internal/storage"
)

// testLimiter returns a limiter with a controllable clock.
func testLimiter() (*Limiter, *time.Time, *storage.MemoryStore) {
	kv := storage.NewMemoryStore()
	l := New(kv)

	now := time.UnixMilli(1700000000000)
	l.now = func() time.Time { return now }
	return l, &now, kv
}

func TestCheck_AllowsUnderLimit(t *testing.T) {
	l, _, _ := testLimiter()

	res := l.Check(ActionReview)
	assert.True(t, res.Allowed)
	assert.Equal(t, 3, res.Remaining)

	l.Record(ActionReview)
	res = l.Check(ActionReview)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestCheck_DeniesAtLimit(t *testing.T) {
	l, _, _ := testLimiter()

	for i := 0; i < 3; i++ {
		require.True(t, l.Check(ActionReview).Allowed)
		l.Record(ActionReview)
	}

	res := l.Check(ActionReview)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.Equal(t, time.Minute, res.RetryAfter)
	assert.Contains(t, res.Message, "review submissions")
	assert.Contains(t, res.Message, "60s")
}

func TestCheck_WindowSlides(t *testing.T) {
	l, now, _ := testLimiter()

	for i := 0; i < 3; i++ {
		l.Record(ActionReview)
	}
	require.False(t, l.Check(ActionReview).Allowed)

	*now = now.Add(30 * time.Second)
	res := l.Check(ActionReview)
	assert.False(t, res.Allowed)
	assert.Equal(t, 30*time.Second, res.RetryAfter)

	*now = now.Add(31 * time.Second)
	res = l.Check(ActionReview)
	assert.True(t, res.Allowed, "all timestamps aged out of the window")
	assert.Equal(t, 3, res.Remaining)
}

func TestCheck_WindowsPerAction(t *testing.T) {
	l, _, _ := testLimiter()

	for i := 0; i < 3; i++ {
		l.Record(ActionReview)
	}
	require.False(t, l.Check(ActionReview).Allowed)

	assert.True(t, l.Check(ActionSearch).Allowed, "actions count independently")
	assert.Equal(t, 10, l.Check(ActionSearch).Remaining)
}

func TestCheck_UnknownActionAllowed(t *testing.T) {
	l, _, kv := testLimiter()

	res := l.Check(Action("nonsense"))
	assert.True(t, res.Allowed)

	// Recording an unknown action writes nothing.
	l.Record(Action("nonsense"))
	_, ok, err := kv.Get("af-rl-nonsense")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheck_CorruptDataReadsAsEmpty(t *testing.T) {
	l, _, kv := testLimiter()

	require.NoError(t, kv.Set("af-rl-review", []byte("{definitely not json")))
	res := l.Check(ActionReview)
	assert.True(t, res.Allowed)
	assert.Equal(t, 3, res.Remaining)

	require.NoError(t, kv.Set("af-rl-review", []byte(`{"an":"object"}`)))
	assert.True(t, l.Check(ActionReview).Allowed)
}

func TestRecord_PrunesAgedTimestamps(t *testing.T) {
	l, now, kv := testLimiter()

	l.Record(ActionSandbox)
	*now = now.Add(2 * time.Minute)
	l.Record(ActionSandbox)

	raw, ok, err := kv.Get("af-rl-sandbox")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, string(raw), "1700000000000", "aged timestamp pruned on write")
}

func TestDailyLimit(t *testing.T) {
	l, now, _ := testLimiter()

	for i := 0; i < 100; i++ {
		l.Record(ActionDaily)
		*now = now.Add(time.Second)
	}

	res := l.Check(ActionDaily)
	assert.False(t, res.Allowed)
	assert.Contains(t, res.Message, "daily AI requests")

	*now = now.Add(24 * time.Hour)
	assert.True(t, l.Check(ActionDaily).Allowed)
}
