package catalog

// agents is the embedded production catalog. Keywords are lowercase because
// the scoring engine matches them against a lower-cased query.
var agents = []Agent{
	{
		ID:           "chatgpt",
		Name:         "ChatGPT",
		Category:     CategoryChatbot,
		Description:  "A general-purpose conversational assistant for answering questions, drafting text, and reasoning through problems.",
		Keywords:     []string{"chat", "question", "answer", "assistant", "general", "brainstorm", "explain"},
		Capabilities: []string{"Conversational Q&A", "Drafting and editing text", "Code explanation", "Brainstorming ideas"},
		BestFor:      []string{"general questions", "brainstorming", "learning new topics"},
		Pricing:      "Free tier, Plus from $20/mo",
		PricingModel: PricingFreemium,
		Access:       AccessHybrid,
		Rating:       4.7,
		ReviewCount:  18234,
		Verified:     true,
		Sandbox:      true,
		Models:       []string{"GPT-4o", "GPT-4o mini"},
		Industries:   []string{"General", "Education", "Marketing"},
		Link:         "https://chat.openai.com",
		Trending:     true,
	},
	{
		ID:           "claude",
		Name:         "Claude",
		Category:     CategoryChatbot,
		Description:  "A conversational assistant known for long-context reasoning, careful writing, and document analysis.",
		Keywords:     []string{"chat", "analysis", "long document", "reasoning", "summarize", "assistant"},
		Capabilities: []string{"Long document analysis", "Careful technical writing", "Structured reasoning", "Code review"},
		BestFor:      []string{"analyzing long documents", "technical writing", "research synthesis"},
		Pricing:      "Free tier, Pro from $20/mo",
		PricingModel: PricingFreemium,
		Access:       AccessHybrid,
		Rating:       4.8,
		ReviewCount:  9412,
		Verified:     true,
		Sandbox:      true,
		Models:       []string{"Claude Sonnet", "Claude Opus"},
		Industries:   []string{"General", "Legal", "Research"},
		Link:         "https://claude.ai",
		Trending:     true,
	},
	{
		ID:           "github-copilot",
		Name:         "GitHub Copilot",
		Category:     CategoryCodeAssistant,
		Description:  "An in-editor coding assistant that completes code, writes tests, and explains unfamiliar source.",
		Keywords:     []string{"code", "autocomplete", "programming", "ide", "pair programming", "tests"},
		Capabilities: []string{"Inline code completion", "Test generation", "Code explanation", "Refactoring suggestions"},
		BestFor:      []string{"writing code faster", "generating unit tests", "working in large codebases"},
		Pricing:      "From $10/mo, free for students",
		PricingModel: PricingSubscription,
		Access:       AccessAPI,
		Rating:       4.6,
		ReviewCount:  12877,
		Verified:     true,
		Sandbox:      false,
		Models:       []string{"GPT-4o", "Claude Sonnet"},
		Industries:   []string{"Software", "DevTools"},
		Link:         "https://github.com/features/copilot",
		Trending:     false,
	},
	{
		ID:           "cursor",
		Name:         "Cursor",
		Category:     CategoryCodeAssistant,
		Description:  "An AI-first code editor that edits across files, runs agentic refactors, and debugs with full project context.",
		Keywords:     []string{"code", "editor", "refactor", "debug", "programming", "agentic coding"},
		Capabilities: []string{"Multi-file editing", "Agentic refactoring", "Debugging assistance", "Codebase-aware chat"},
		BestFor:      []string{"building full features", "debugging tricky issues", "refactoring legacy code"},
		Pricing:      "Free tier, Pro from $20/mo",
		PricingModel: PricingFreemium,
		Access:       AccessHybrid,
		Rating:       4.8,
		ReviewCount:  7341,
		Verified:     true,
		Sandbox:      false,
		Models:       []string{"GPT-4o", "Claude Sonnet"},
		Industries:   []string{"Software", "Startups"},
		Link:         "https://cursor.com",
		Trending:     true,
	},
	{
		ID:           "midjourney",
		Name:         "Midjourney",
		Category:     CategoryImageGeneration,
		Description:  "A text-to-image model producing high-quality artistic and photorealistic images from prompts.",
		Keywords:     []string{"image", "art", "picture", "illustration", "generate image", "visual"},
		Capabilities: []string{"Photorealistic rendering", "Artistic styles", "Image variations", "Upscaling"},
		BestFor:      []string{"marketing visuals", "concept art", "brand imagery"},
		Pricing:      "From $10/mo",
		PricingModel: PricingSubscription,
		Access:       AccessBrowser,
		Rating:       4.7,
		ReviewCount:  15290,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Marketing", "Entertainment", "Design"},
		Link:         "https://midjourney.com",
		Trending:     true,
	},
	{
		ID:           "dall-e",
		Name:         "DALL·E 3",
		Category:     CategoryImageGeneration,
		Description:  "A text-to-image generator with strong prompt adherence and built-in editing of generated images.",
		Keywords:     []string{"image", "picture", "logo", "generate image", "edit image", "illustration"},
		Capabilities: []string{"Prompt-faithful generation", "Inpainting edits", "Logo drafts", "Style control"},
		BestFor:      []string{"product mockups", "blog illustrations", "quick logo concepts"},
		Pricing:      "Included with ChatGPT Plus",
		PricingModel: PricingUsageBased,
		Access:       AccessAPI,
		Rating:       4.5,
		ReviewCount:  8903,
		Verified:     true,
		Sandbox:      true,
		Industries:   []string{"Marketing", "E-commerce"},
		Link:         "https://openai.com/dall-e-3",
		Trending:     false,
	},
	{
		ID:           "jasper",
		Name:         "Jasper",
		Category:     CategoryWriting,
		Description:  "A marketing-focused writing assistant that produces on-brand copy, blog posts, and campaign content.",
		Keywords:     []string{"writing", "copy", "blog", "marketing", "content", "seo"},
		Capabilities: []string{"Long-form blog writing", "Brand voice control", "SEO optimization", "Campaign copy"},
		BestFor:      []string{"marketing teams", "blog content at scale", "ad copy"},
		Pricing:      "From $39/mo",
		PricingModel: PricingSubscription,
		Access:       AccessBrowser,
		Rating:       4.3,
		ReviewCount:  5521,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Marketing", "E-commerce"},
		Link:         "https://jasper.ai",
		Trending:     false,
	},
	{
		ID:           "notion-ai",
		Name:         "Notion AI",
		Category:     CategoryWriting,
		Description:  "A writing and organization assistant embedded in Notion for drafting, summarizing, and structuring notes.",
		Keywords:     []string{"writing", "notes", "summarize", "document", "wiki", "organize"},
		Capabilities: []string{"Drafting inside documents", "Summarizing notes", "Action item extraction", "Translation"},
		BestFor:      []string{"meeting notes", "knowledge bases", "team documentation"},
		Pricing:      "Add-on from $8/mo",
		PricingModel: PricingSubscription,
		Access:       AccessBrowser,
		Rating:       4.4,
		ReviewCount:  6110,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Productivity", "Startups"},
		Link:         "https://notion.so/product/ai",
		Trending:     false,
	},
	{
		ID:           "julius",
		Name:         "Julius AI",
		Category:     CategoryDataAnalysis,
		Description:  "A data analysis assistant that interprets spreadsheets and databases, producing charts and statistical summaries.",
		Keywords:     []string{"data", "analysis", "csv", "spreadsheet", "chart", "statistics", "analytics"},
		Capabilities: []string{"CSV and spreadsheet analysis", "Chart generation", "Statistical testing", "Data cleaning"},
		BestFor:      []string{"analyzing spreadsheets", "visualizing data", "quick statistical checks"},
		Pricing:      "Free tier, from $20/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.4,
		ReviewCount:  2874,
		Verified:     true,
		Sandbox:      true,
		Industries:   []string{"Finance", "Research", "Operations"},
		Link:         "https://julius.ai",
		Trending:     false,
	},
	{
		ID:           "perplexity",
		Name:         "Perplexity",
		Category:     CategoryDataAnalysis,
		Description:  "A research assistant that answers questions with cited sources and digs through current web data.",
		Keywords:     []string{"research", "search", "sources", "citations", "facts", "web data"},
		Capabilities: []string{"Cited answers", "Web research", "Follow-up questioning", "Report drafting"},
		BestFor:      []string{"market research", "fact finding", "literature review"},
		Pricing:      "Free tier, Pro from $20/mo",
		PricingModel: PricingFreemium,
		Access:       AccessHybrid,
		Rating:       4.6,
		ReviewCount:  7782,
		Verified:     true,
		Sandbox:      true,
		Industries:   []string{"Research", "Finance", "Journalism"},
		Link:         "https://perplexity.ai",
		Trending:     true,
	},
	{
		ID:           "v0",
		Name:         "v0 by Vercel",
		Category:     CategoryWebBuilding,
		Description:  "A generative UI tool that turns prompts into production-ready React components and full pages.",
		Keywords:     []string{"website", "dashboard", "frontend", "react", "component", "landing page", "saas"},
		Capabilities: []string{"React component generation", "Responsive layouts", "Dashboard scaffolding", "Tailwind styling"},
		BestFor:      []string{"building dashboards", "landing pages", "ui prototyping"},
		Pricing:      "Free tier, from $20/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.5,
		ReviewCount:  4120,
		Verified:     true,
		Sandbox:      true,
		Industries:   []string{"Software", "Startups"},
		Link:         "https://v0.dev",
		Trending:     true,
	},
	{
		ID:           "lovable",
		Name:         "Lovable",
		Category:     CategoryWebBuilding,
		Description:  "A full-stack app builder that generates complete web applications with auth, data, and deployment from a prompt.",
		Keywords:     []string{"app", "website", "full-stack", "build", "saas", "prototype", "mvp"},
		Capabilities: []string{"Full-stack app generation", "Database wiring", "Auth scaffolding", "One-click deployment"},
		BestFor:      []string{"building an mvp", "saas prototypes", "internal tools"},
		Pricing:      "Free tier, from $25/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.4,
		ReviewCount:  2350,
		Verified:     true,
		Sandbox:      true,
		Industries:   []string{"Startups", "Agencies"},
		Link:         "https://lovable.dev",
		Trending:     true,
	},
	{
		ID:           "runway",
		Name:         "Runway",
		Category:     CategoryVideo,
		Description:  "A video generation and editing suite for cinematic clips, motion graphics, and visual effects.",
		Keywords:     []string{"video", "film", "clip", "motion", "vfx", "generate video"},
		Capabilities: []string{"Text-to-video generation", "Video inpainting", "Green screen removal", "Motion tracking"},
		BestFor:      []string{"short cinematic clips", "social media video", "visual effects"},
		Pricing:      "Free tier, from $12/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.5,
		ReviewCount:  5034,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Entertainment", "Marketing"},
		Link:         "https://runwayml.com",
		Trending:     true,
	},
	{
		ID:           "synthesia",
		Name:         "Synthesia",
		Category:     CategoryVideo,
		Description:  "An avatar video platform that turns scripts into presenter-led videos in minutes.",
		Keywords:     []string{"video", "avatar", "presenter", "training video", "explainer", "talking head"},
		Capabilities: []string{"AI avatar presenters", "Script-to-video", "Multi-language narration", "Template library"},
		BestFor:      []string{"training videos", "product explainers", "onboarding content"},
		Pricing:      "From $22/mo",
		PricingModel: PricingSubscription,
		Access:       AccessBrowser,
		Rating:       4.3,
		ReviewCount:  3189,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"HR", "Education", "Enterprise"},
		Link:         "https://synthesia.io",
		Trending:     false,
	},
	{
		ID:           "elevenlabs",
		Name:         "ElevenLabs",
		Category:     CategoryAudio,
		Description:  "A voice synthesis platform producing natural text-to-speech, voice cloning, and dubbing.",
		Keywords:     []string{"voice", "audio", "speech", "text-to-speech", "narration", "dubbing"},
		Capabilities: []string{"Natural text-to-speech", "Voice cloning", "Audiobook narration", "Dubbing"},
		BestFor:      []string{"voiceovers", "audiobook production", "podcast narration"},
		Pricing:      "Free tier, from $5/mo",
		PricingModel: PricingFreemium,
		Access:       AccessAPI,
		Rating:       4.7,
		ReviewCount:  6677,
		Verified:     true,
		Sandbox:      true,
		Industries:   []string{"Media", "Gaming", "Education"},
		Link:         "https://elevenlabs.io",
		Trending:     true,
	},
	{
		ID:           "suno",
		Name:         "Suno",
		Category:     CategoryAudio,
		Description:  "A music generation tool that composes full songs with vocals from a text description.",
		Keywords:     []string{"music", "song", "audio", "compose", "melody", "soundtrack"},
		Capabilities: []string{"Full song generation", "Vocal synthesis", "Genre control", "Instrumental tracks"},
		BestFor:      []string{"background music", "jingles", "creative songwriting"},
		Pricing:      "Free tier, from $10/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.4,
		ReviewCount:  2901,
		Verified:     false,
		Sandbox:      false,
		Industries:   []string{"Media", "Marketing"},
		Link:         "https://suno.com",
		Trending:     true,
	},
	{
		ID:           "zapier",
		Name:         "Zapier AI",
		Category:     CategoryAutomation,
		Description:  "A workflow automation platform connecting thousands of apps with AI-assisted step building.",
		Keywords:     []string{"automation", "workflow", "integrate", "zap", "connect apps", "no-code"},
		Capabilities: []string{"Cross-app workflows", "AI step suggestions", "Webhook handling", "Scheduled triggers"},
		BestFor:      []string{"automating repetitive tasks", "connecting saas tools", "email workflows"},
		Pricing:      "Free tier, from $19.99/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.5,
		ReviewCount:  11240,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Operations", "Sales", "Marketing"},
		Link:         "https://zapier.com",
		Trending:     false,
	},
	{
		ID:           "make",
		Name:         "Make",
		Category:     CategoryAutomation,
		Description:  "A visual automation builder for complex branching workflows across APIs and data sources.",
		Keywords:     []string{"automation", "workflow", "api", "scenario", "branching", "integration"},
		Capabilities: []string{"Visual scenario builder", "Complex branching", "API aggregation", "Error handling routes"},
		BestFor:      []string{"complex workflows", "api orchestration", "data syncing"},
		Pricing:      "Free tier, from $9/mo",
		PricingModel: PricingFreemium,
		Access:       AccessBrowser,
		Rating:       4.4,
		ReviewCount:  4382,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Operations", "IT"},
		Link:         "https://make.com",
		Trending:     false,
	},
	{
		ID:           "galileo",
		Name:         "Galileo AI",
		Category:     CategoryDesign,
		Description:  "A UI design generator that produces editable, high-fidelity mockups from text descriptions.",
		Keywords:     []string{"design", "ui", "mockup", "interface", "wireframe", "figma"},
		Capabilities: []string{"High-fidelity UI mockups", "Design system awareness", "Figma export", "Copy suggestions"},
		BestFor:      []string{"ui mockups", "design exploration", "early product concepts"},
		Pricing:      "From $19/mo",
		PricingModel: PricingSubscription,
		Access:       AccessBrowser,
		Rating:       4.2,
		ReviewCount:  1543,
		Verified:     false,
		Sandbox:      false,
		Industries:   []string{"Design", "Startups"},
		Link:         "https://usegalileo.ai",
		Trending:     false,
	},
	{
		ID:           "figma-ai",
		Name:         "Figma AI",
		Category:     CategoryDesign,
		Description:  "AI features inside Figma for generating layouts, renaming layers, and drafting design content.",
		Keywords:     []string{"design", "figma", "layout", "prototype", "ux", "branding"},
		Capabilities: []string{"Layout generation", "Content drafting", "Layer organization", "Prototype wiring"},
		BestFor:      []string{"design teams", "rapid prototyping", "design systems"},
		Pricing:      "Included with Figma plans",
		PricingModel: PricingSubscription,
		Access:       AccessBrowser,
		Rating:       4.3,
		ReviewCount:  3920,
		Verified:     true,
		Sandbox:      false,
		Industries:   []string{"Design", "Software"},
		Link:         "https://figma.com",
		Trending:     false,
	},
}
