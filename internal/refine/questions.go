/*
Package refine drives the post-selection refinement flow: category-specific
follow-up questions for a chosen agent, a small session state machine over
them, and synthesis of a customized prompt from the accumulated answers.
*/
package refine

import (
	"fmt"

	"github.com/aifinder/ai-finder/internal/catalog"
)

// Option is one selectable answer for a question.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is a single multiple-choice refinement question. IDs are unique
// across the whole bank so answer maps can be keyed by them unambiguously.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Step is a titled group of questions shown together.
type Step struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Answers maps a question ID to the set of selected option values.
type Answers map[string][]string

// maxCategoryQuestions bounds the category step.
const maxCategoryQuestions = 3

// categoryQuestions holds the per-category question lists. Every category in
// the catalog enumeration has an entry.
var categoryQuestions = map[catalog.Category][]Question{
	catalog.CategoryCodeAssistant: {
		{ID: "code_task", Text: "What do you need help with?", Options: []Option{
			{Label: "Writing new code", Value: "write"},
			{Label: "Debugging / Fixing", Value: "debug"},
			{Label: "Refactoring", Value: "refactor"},
			{Label: "Code review", Value: "review"},
			{Label: "Learning", Value: "learn"},
		}},
		{ID: "code_lang", Text: "Primary language or framework?", Options: []Option{
			{Label: "JavaScript / TypeScript", Value: "js"},
			{Label: "Python", Value: "python"},
			{Label: "Java / Kotlin", Value: "java"},
			{Label: "Go / Rust", Value: "systems"},
			{Label: "Other", Value: "other"},
		}},
		{ID: "code_detail", Text: "How detailed should the response be?", Options: []Option{
			{Label: "Quick answer", Value: "brief"},
			{Label: "Step-by-step explanation", Value: "detailed"},
			{Label: "Full implementation", Value: "full"},
		}},
	},
	catalog.CategoryImageGeneration: {
		{ID: "image_purpose", Text: "What are the images for?", Options: []Option{
			{Label: "Marketing / Social media", Value: "marketing"},
			{Label: "Product / E-commerce", Value: "product"},
			{Label: "Art / Creative", Value: "art"},
			{Label: "UI / App assets", Value: "ui"},
			{Label: "Logo / Branding", Value: "logo"},
		}},
		{ID: "image_style", Text: "What style do you prefer?", Options: []Option{
			{Label: "Photorealistic", Value: "photo"},
			{Label: "Illustrated / Artistic", Value: "artistic"},
			{Label: "Minimalist / Clean", Value: "minimal"},
			{Label: "3D rendered", Value: "3d"},
		}},
		{ID: "image_format", Text: "What output do you need?", Options: []Option{
			{Label: "Single image", Value: "single"},
			{Label: "Multiple variations", Value: "variations"},
			{Label: "Image with edits", Value: "edit"},
		}},
	},
	catalog.CategoryWriting: {
		{ID: "writing_type", Text: "What type of content?", Options: []Option{
			{Label: "Blog / Article", Value: "blog"},
			{Label: "Marketing copy", Value: "marketing"},
			{Label: "Technical docs", Value: "technical"},
			{Label: "Fiction / Creative", Value: "fiction"},
			{Label: "Email / Comms", Value: "email"},
		}},
		{ID: "writing_tone", Text: "What tone?", Options: []Option{
			{Label: "Professional", Value: "professional"},
			{Label: "Casual / Friendly", Value: "casual"},
			{Label: "Academic", Value: "academic"},
			{Label: "Witty / Creative", Value: "creative"},
		}},
		{ID: "writing_length", Text: "How long should the output be?", Options: []Option{
			{Label: "Short (< 200 words)", Value: "short"},
			{Label: "Medium (200-500 words)", Value: "medium"},
			{Label: "Long (500+ words)", Value: "long"},
		}},
	},
	catalog.CategoryDataAnalysis: {
		{ID: "data_type", Text: "What type of data are you working with?", Options: []Option{
			{Label: "CSV / Spreadsheet", Value: "csv"},
			{Label: "Database", Value: "database"},
			{Label: "Web data / Scraping", Value: "web"},
			{Label: "API data", Value: "api"},
			{Label: "Research papers", Value: "research"},
		}},
		{ID: "data_goal", Text: "What is your goal?", Options: []Option{
			{Label: "Find patterns / Insights", Value: "patterns"},
			{Label: "Build a report", Value: "report"},
			{Label: "Compare datasets", Value: "compare"},
			{Label: "Get a summary", Value: "summary"},
		}},
		{ID: "data_output", Text: "What format do you want the result in?", Options: []Option{
			{Label: "Bullet points", Value: "bullets"},
			{Label: "Paragraph summary", Value: "paragraph"},
			{Label: "Code / Script", Value: "code"},
			{Label: "Table / Chart", Value: "table"},
		}},
	},
	catalog.CategoryWebBuilding: {
		{ID: "web_type", Text: "What are you building?", Options: []Option{
			{Label: "Landing page", Value: "landing"},
			{Label: "Full web app", Value: "webapp"},
			{Label: "E-commerce store", Value: "ecommerce"},
			{Label: "Portfolio / Blog", Value: "portfolio"},
			{Label: "SaaS dashboard", Value: "saas"},
		}},
		{ID: "web_backend", Text: "Do you need backend support?", Options: []Option{
			{Label: "Yes, real-time data", Value: "realtime"},
			{Label: "Yes, simple API", Value: "api"},
			{Label: "No, frontend only", Value: "frontend"},
		}},
		{ID: "web_deploy", Text: "Where will you deploy?", Options: []Option{
			{Label: "Vercel / Netlify", Value: "vercel"},
			{Label: "AWS / GCP", Value: "cloud"},
			{Label: "Self-hosted", Value: "self"},
			{Label: "Not sure yet", Value: "unsure"},
		}},
	},
	catalog.CategoryVideo: {
		{ID: "video_type", Text: "What type of video?", Options: []Option{
			{Label: "Short clips / Social", Value: "short"},
			{Label: "Explainer / Tutorial", Value: "explainer"},
			{Label: "Product demo", Value: "demo"},
			{Label: "Cinematic / Creative", Value: "cinematic"},
			{Label: "Avatar / Talking head", Value: "avatar"},
		}},
		{ID: "video_length", Text: "How long?", Options: []Option{
			{Label: "Under 30 seconds", Value: "short"},
			{Label: "1-3 minutes", Value: "medium"},
			{Label: "5+ minutes", Value: "long"},
		}},
	},
	catalog.CategoryAudio: {
		{ID: "audio_type", Text: "What audio do you need?", Options: []Option{
			{Label: "Voice / Text-to-speech", Value: "voice"},
			{Label: "Music / Songs", Value: "music"},
			{Label: "Podcast editing", Value: "podcast"},
			{Label: "Sound effects", Value: "sfx"},
		}},
		{ID: "audio_quality", Text: "Quality level?", Options: []Option{
			{Label: "Draft / Quick", Value: "draft"},
			{Label: "Professional", Value: "professional"},
		}},
	},
	catalog.CategoryChatbot: {
		{ID: "bot_purpose", Text: "What is the chatbot for?", Options: []Option{
			{Label: "Customer support", Value: "support"},
			{Label: "Internal assistant", Value: "internal"},
			{Label: "Lead generation", Value: "leadgen"},
			{Label: "General Q&A", Value: "general"},
		}},
		{ID: "bot_tone", Text: "What tone should the bot use?", Options: []Option{
			{Label: "Professional", Value: "professional"},
			{Label: "Friendly / Casual", Value: "casual"},
			{Label: "Technical", Value: "technical"},
		}},
	},
	catalog.CategoryAutomation: {
		{ID: "auto_complexity", Text: "How complex is the workflow?", Options: []Option{
			{Label: "Simple (2-3 steps)", Value: "simple"},
			{Label: "Moderate (branching)", Value: "moderate"},
			{Label: "Complex (API + data)", Value: "complex"},
		}},
		{ID: "auto_tools", Text: "What tools are involved?", Options: []Option{
			{Label: "Email / Calendar", Value: "email"},
			{Label: "CRM / Sales tools", Value: "crm"},
			{Label: "Databases / Spreadsheets", Value: "data"},
			{Label: "APIs / Webhooks", Value: "api"},
		}},
	},
	catalog.CategoryDesign: {
		{ID: "design_task", Text: "What design task?", Options: []Option{
			{Label: "UI mockups", Value: "ui"},
			{Label: "Wireframing", Value: "wireframe"},
			{Label: "Branding / Color", Value: "branding"},
			{Label: "UX research", Value: "ux"},
		}},
		{ID: "design_format", Text: "What deliverable do you need?", Options: []Option{
			{Label: "Visual mockup", Value: "mockup"},
			{Label: "Written guidelines", Value: "guidelines"},
			{Label: "Color palette / System", Value: "palette"},
		}},
	},
}

// universalQuestions always form the final question step.
var universalQuestions = []Question{
	{ID: "tech_level", Text: "What's your technical level?", Options: []Option{
		{Label: "Beginner", Value: "beginner"},
		{Label: "Intermediate", Value: "intermediate"},
		{Label: "Expert", Value: "expert"},
	}},
	{ID: "output_pref", Text: "How should the output be structured?", Options: []Option{
		{Label: "Step-by-step guide", Value: "steps"},
		{Label: "Concise summary", Value: "summary"},
		{Label: "Detailed deep-dive", Value: "detailed"},
		{Label: "Ready-to-use template", Value: "template"},
	}},
}

// Questions builds the refinement steps for an agent: a category step when
// the agent's category has questions, then the universal preferences step.
// The query is accepted for interface symmetry with the prompt generators;
// the steps depend only on the agent's category.
func Questions(_ string, agent *catalog.Agent) []Step {
	var steps []Step

	if agent != nil {
		if qs := categoryQuestions[agent.Category]; len(qs) > 0 {
			step := Step{Title: fmt.Sprintf("Customize for %s", agent.Name)}
			if len(qs) > maxCategoryQuestions {
				qs = qs[:maxCategoryQuestions]
			}
			step.Questions = qs
			steps = append(steps, step)
		}
	}

	steps = append(steps, Step{Title: "Your preferences", Questions: universalQuestions})
	return steps
}

// ValidOptions returns the whitelist of option values for a question ID,
// searching the category banks first and the universal list second. Unknown
// IDs yield an empty list.
func ValidOptions(questionID string) []string {
	for _, questions := range categoryQuestions {
		for _, q := range questions {
			if q.ID == questionID {
				return optionValues(q)
			}
		}
	}
	for _, q := range universalQuestions {
		if q.ID == questionID {
			return optionValues(q)
		}
	}
	return nil
}

func optionValues(q Question) []string {
	values := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		values = append(values, o.Value)
	}
	return values
}
