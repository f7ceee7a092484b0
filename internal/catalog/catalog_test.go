package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AgentIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Default().Agents() {
		assert.False(t, seen[a.ID], "duplicate agent id %q", a.ID)
		seen[a.ID] = true
	}
}

func TestDefault_AgentFieldsWellFormed(t *testing.T) {
	for _, a := range Default().Agents() {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.True(t, a.Category.Valid(), "agent %s has unknown category %q", a.ID, a.Category)
		assert.True(t, a.PricingModel.Valid(), "agent %s has unknown pricing model %q", a.ID, a.PricingModel)
		assert.True(t, a.Access.Valid(), "agent %s has unknown access type %q", a.ID, a.Access)
		assert.NotEmpty(t, a.Keywords, "agent %s has no keywords", a.ID)
		assert.NotEmpty(t, a.Capabilities, "agent %s has no capabilities", a.ID)
		assert.True(t, strings.HasPrefix(a.Link, "https://"), "agent %s link %q", a.ID, a.Link)

		for _, kw := range a.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw, "agent %s keyword %q must be lowercase", a.ID, kw)
		}
	}
}

func TestDefault_EveryCategoryCovered(t *testing.T) {
	c := Default()
	for _, cat := range Categories() {
		assert.NotEmpty(t, c.ByCategory(cat), "no agents in category %q", cat)
	}
}

func TestDefault_StackTemplates(t *testing.T) {
	stacks := Default().Stacks()
	require.NotEmpty(t, stacks)
	assert.Equal(t, "SaaS Dashboard", stacks[0].UseCase, "first template is the documented fallback")
	for _, s := range stacks {
		assert.NotEmpty(t, s.Keywords)
		assert.NotEmpty(t, s.Frontend.Name)
		assert.NotEmpty(t, s.Backend.Name)
		assert.NotEmpty(t, s.Database.Name)
		assert.NotEmpty(t, s.Hosting.Name)
	}
}

func TestAgentByID(t *testing.T) {
	c := Default()
	a, ok := c.AgentByID("cursor")
	require.True(t, ok)
	assert.Equal(t, "Cursor", a.Name)

	_, ok = c.AgentByID("no-such-agent")
	assert.False(t, ok)
}

func TestStatuses_Deterministic(t *testing.T) {
	c := Default()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	first := c.Statuses(now)
	second := c.Statuses(now)
	require.Equal(t, len(c.Agents()), len(first))
	assert.Equal(t, first, second)

	for _, e := range first {
		switch e.Status {
		case StatusOperational, StatusDegraded:
			assert.Greater(t, e.Latency, time.Duration(0))
		case StatusDown:
			assert.Zero(t, e.Latency)
			assert.NotEmpty(t, e.Incidents)
		}
		assert.True(t, e.LastChecked.Before(now))
	}
}
