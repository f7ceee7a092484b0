package catalog

import "time"

// Status is an agent's synthesized operational state.
type Status string

const (
	StatusOperational Status = "operational"
	StatusDegraded    Status = "degraded"
	StatusDown        Status = "down"
)

// StatusEntry describes the health of one agent at a point in time.
type StatusEntry struct {
	AgentID     string        `json:"agentId"`
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Uptime      float64       `json:"uptime"`
	Latency     time.Duration `json:"latency"`
	LastChecked time.Time     `json:"lastChecked"`
	Incidents   []string      `json:"incidents,omitempty"`
}

// Statuses synthesizes a status entry per agent. The data is deterministic
// from the catalog index so repeated calls within a run agree; there is no
// real health check behind it.
func (c *Catalog) Statuses(now time.Time) []StatusEntry {
	entries := make([]StatusEntry, 0, len(c.agents))
	for i, agent := range c.agents {
		entry := StatusEntry{
			AgentID:     agent.ID,
			Name:        agent.Name,
			Status:      StatusOperational,
			Uptime:      99.0 + float64((i*37)%99)/100.0,
			Latency:     time.Duration(100+(i*53)%400) * time.Millisecond,
			LastChecked: now.Add(-time.Duration(2+(i*7)%10) * time.Minute),
		}

		switch {
		case i%17 == 5:
			entry.Status = StatusDegraded
			entry.Uptime = 97.0 + float64((i*37)%150)/100.0
			entry.Latency = time.Duration(700+(i*53)%500) * time.Millisecond
			entry.Incidents = []string{"Elevated response times observed. Monitoring."}
		case i%23 == 11:
			entry.Status = StatusDown
			entry.Uptime = 95.0 + float64((i*37)%200)/100.0
			entry.Latency = 0
			entry.Incidents = []string{"Service temporarily unavailable. Team investigating."}
		}

		entries = append(entries, entry)
	}
	return entries
}
