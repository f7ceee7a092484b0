/*
Package ratelimit implements a sliding-window rate limiter over the
key-value store.

Each action keeps the timestamps of its recent requests; a request is allowed
while fewer than the action's maximum fall inside the window. This is a
client-side guard against accidental abuse, not a security boundary: the
store is local and the user can clear it.
*/
package ratelimit

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/aifinder/ai-finder/internal/storage"
)

// Action names a rate-limited operation.
type Action string

const (
	ActionSearch     Action = "search"
	ActionRefine     Action = "refine"
	ActionSubmission Action = "submission"
	ActionReview     Action = "review"
	ActionSandbox    Action = "sandbox"
	ActionDaily      Action = "daily"
)

// config is one action's limit.
type config struct {
	maxRequests int
	window      time.Duration
	label       string
}

var limits = map[Action]config{
	ActionSearch:     {maxRequests: 10, window: time.Minute, label: "search requests"},
	ActionRefine:     {maxRequests: 15, window: time.Minute, label: "refinement requests"},
	ActionSubmission: {maxRequests: 5, window: time.Hour, label: "agent submissions"},
	ActionReview:     {maxRequests: 3, window: time.Minute, label: "review submissions"},
	ActionSandbox:    {maxRequests: 5, window: time.Minute, label: "sandbox tries"},
	ActionDaily:      {maxRequests: 100, window: 24 * time.Hour, label: "daily AI requests"},
}

const storagePrefix = "af-rl-"

// Result is the allow/deny decision for one check.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
	Remaining  int
	Message    string
}

// Limiter checks and records requests per action.
type Limiter struct {
	kv  storage.Store
	now func() time.Time
}

// New creates a limiter over kv.
func New(kv storage.Store) *Limiter {
	return &Limiter{kv: kv, now: time.Now}
}

// Check reports whether another request for action is allowed right now.
// Unknown actions are always allowed.
func (l *Limiter) Check(action Action) Result {
	cfg, ok := limits[action]
	if !ok {
		return Result{Allowed: true, Remaining: math.MaxInt}
	}

	now := l.now()
	timestamps := l.inWindow(action, cfg, now)

	if len(timestamps) >= cfg.maxRequests {
		oldest := timestamps[0]
		for _, t := range timestamps[1:] {
			if t < oldest {
				oldest = t
			}
		}
		retryAfter := time.UnixMilli(oldest).Add(cfg.window).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:    false,
			RetryAfter: retryAfter,
			Remaining:  0,
			Message: fmt.Sprintf("You've hit the limit for %s. Try again in %ds.",
				cfg.label, int(math.Ceil(retryAfter.Seconds()))),
		}
	}

	return Result{Allowed: true, Remaining: cfg.maxRequests - len(timestamps)}
}

// Record stores a request timestamp for action. Call it after the action
// succeeds.
func (l *Limiter) Record(action Action) {
	cfg, ok := limits[action]
	if !ok {
		return
	}

	now := l.now()
	timestamps := append(l.inWindow(action, cfg, now), now.UnixMilli())

	data, err := json.Marshal(timestamps)
	if err != nil {
		return
	}
	_ = l.kv.Set(storagePrefix+string(action), data)
}

// inWindow loads the stored timestamps for action, keeping only those inside
// the current window. Corrupt stored data reads as an empty window.
func (l *Limiter) inWindow(action Action, cfg config, now time.Time) []int64 {
	raw, ok, err := l.kv.Get(storagePrefix + string(action))
	if err != nil || !ok {
		return nil
	}

	var stored []int64
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil
	}

	windowStart := now.Add(-cfg.window).UnixMilli()
	kept := stored[:0]
	for _, t := range stored {
		if t > windowStart {
			kept = append(kept, t)
		}
	}
	return kept
}
