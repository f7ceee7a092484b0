/*
Package catalog is the read-only data source for the finder.

It holds the fixed collection of agent records, the tech-stack templates, and
synthesized per-agent status entries. The engine packages only iterate the
catalog and read fields; nothing mutates it after construction.
*/
package catalog

// Category is the closed set of agent categories. The refinement question
// bank is keyed by these values, so additions here require a question list.
type Category string

const (
	CategoryCodeAssistant   Category = "Code Assistant"
	CategoryImageGeneration Category = "Image Generation"
	CategoryWriting         Category = "Writing"
	CategoryDataAnalysis    Category = "Data Analysis"
	CategoryWebBuilding     Category = "Web Building"
	CategoryVideo           Category = "Video"
	CategoryAudio           Category = "Audio"
	CategoryChatbot         Category = "Chatbot"
	CategoryAutomation      Category = "Automation"
	CategoryDesign          Category = "Design"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryCodeAssistant,
		CategoryImageGeneration,
		CategoryWriting,
		CategoryDataAnalysis,
		CategoryWebBuilding,
		CategoryVideo,
		CategoryAudio,
		CategoryChatbot,
		CategoryAutomation,
		CategoryDesign,
	}
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// PricingModel is the closed set of pricing models.
type PricingModel string

const (
	PricingFree         PricingModel = "free"
	PricingFreemium     PricingModel = "freemium"
	PricingUsageBased   PricingModel = "usage-based"
	PricingSubscription PricingModel = "subscription"
)

// Valid reports whether m is a known pricing model.
func (m PricingModel) Valid() bool {
	switch m {
	case PricingFree, PricingFreemium, PricingUsageBased, PricingSubscription:
		return true
	}
	return false
}

// AccessType is the closed set of ways an agent can be reached.
type AccessType string

const (
	AccessAPI        AccessType = "api"
	AccessBrowser    AccessType = "browser"
	AccessOpenSource AccessType = "open-source"
	AccessHybrid     AccessType = "hybrid"
)

// Valid reports whether a is a known access type.
func (a AccessType) Valid() bool {
	switch a {
	case AccessAPI, AccessBrowser, AccessOpenSource, AccessHybrid:
		return true
	}
	return false
}

// Agent is one catalog entry describing an AI tool or service.
type Agent struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Description  string       `json:"description"`
	Keywords     []string     `json:"keywords"`
	Capabilities []string     `json:"capabilities"`
	BestFor      []string     `json:"bestFor"`
	Pricing      string       `json:"pricing"`
	PricingModel PricingModel `json:"pricingModel"`
	Access       AccessType   `json:"access"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
	Verified     bool         `json:"verified"`
	Sandbox      bool         `json:"sandbox"`
	Models       []string     `json:"models,omitempty"`
	Industries   []string     `json:"industries,omitempty"`
	Link         string       `json:"link"`
	Trending     bool         `json:"trending"`
}

// StackItem is one named slot of a tech-stack recommendation.
type StackItem struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// TechStack is a recommended technology stack for a build-intent query.
type TechStack struct {
	UseCase  string    `json:"useCase"`
	Keywords []string  `json:"keywords"`
	Frontend StackItem `json:"frontend"`
	Backend  StackItem `json:"backend"`
	Database StackItem `json:"database"`
	Hosting  StackItem `json:"hosting"`
}

// Catalog is a read-only view over the agent and stack collections.
type Catalog struct {
	agents []Agent
	stacks []TechStack
	byID   map[string]int
}

// New builds a catalog from explicit data. Used by tests that need a small,
// controlled corpus.
func New(agents []Agent, stacks []TechStack) *Catalog {
	byID := make(map[string]int, len(agents))
	for i, a := range agents {
		byID[a.ID] = i
	}
	return &Catalog{agents: agents, stacks: stacks, byID: byID}
}

// Default returns the catalog over the embedded production data.
func Default() *Catalog {
	return New(agents, techStacks)
}

// Agents returns all agents in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) Agents() []Agent {
	return c.agents
}

// Stacks returns all tech-stack templates in catalog order.
func (c *Catalog) Stacks() []TechStack {
	return c.stacks
}

// AgentByID resolves an agent by identifier.
func (c *Catalog) AgentByID(id string) (*Agent, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.agents[i], true
}

// ByCategory returns all agents in the given category, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Agent {
	var out []Agent
	for _, a := range c.agents {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}
