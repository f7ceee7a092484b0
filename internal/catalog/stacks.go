package catalog

// techStacks lists the stack templates in priority order. The recommender
// falls back to the first entry when a build-intent query matches no keywords.
var techStacks = []TechStack{
	{
		UseCase:  "SaaS Dashboard",
		Keywords: []string{"saas", "dashboard", "admin", "analytics", "panel", "management", "crm"},
		Frontend: StackItem{Name: "Next.js + Tailwind CSS", Reason: "Server-side rendering for fast dashboards, Tailwind for rapid UI styling."},
		Backend:  StackItem{Name: "Node.js + Express or Next.js API routes", Reason: "Simple API layer with auth middleware and REST/GraphQL endpoints."},
		Database: StackItem{Name: "PostgreSQL (Supabase)", Reason: "Relational data with row-level security, real-time subscriptions, and built-in auth."},
		Hosting:  StackItem{Name: "Vercel", Reason: "Zero-config Next.js deployment with edge functions and analytics."},
	},
	{
		UseCase:  "E-Commerce Store",
		Keywords: []string{"ecommerce", "store", "shop", "sell", "product", "cart", "payment", "buy"},
		Frontend: StackItem{Name: "Next.js + Shadcn UI", Reason: "SEO-friendly pages with fast static generation for product listings."},
		Backend:  StackItem{Name: "Medusa.js or Stripe API", Reason: "Headless commerce engine with payment processing built in."},
		Database: StackItem{Name: "PostgreSQL + Redis", Reason: "Relational data for products/orders, Redis for cart sessions and caching."},
		Hosting:  StackItem{Name: "Vercel + Railway", Reason: "Frontend on Vercel, backend services on Railway for easy scaling."},
	},
	{
		UseCase:  "Blog / Content Site",
		Keywords: []string{"blog", "content", "article", "post", "writing", "cms", "news", "magazine"},
		Frontend: StackItem{Name: "Astro or Next.js", Reason: "Static site generation for blazing-fast content pages with minimal JS."},
		Backend:  StackItem{Name: "Headless CMS (Sanity or Contentful)", Reason: "Content-first architecture with structured content models."},
		Database: StackItem{Name: "CMS-managed (no separate DB needed)", Reason: "Content lives in the CMS with API access."},
		Hosting:  StackItem{Name: "Vercel or Netlify", Reason: "Static hosting with CDN, automatic rebuilds on content changes."},
	},
	{
		UseCase:  "Mobile App",
		Keywords: []string{"mobile", "ios", "android", "app", "phone", "native", "cross-platform"},
		Frontend: StackItem{Name: "React Native or Flutter", Reason: "Cross-platform native apps from a single codebase."},
		Backend:  StackItem{Name: "Firebase or Supabase", Reason: "Real-time database, auth, and push notifications out of the box."},
		Database: StackItem{Name: "Firestore or Supabase PostgreSQL", Reason: "Real-time sync for mobile data with offline support."},
		Hosting:  StackItem{Name: "Firebase / Expo + App Store", Reason: "Easy OTA updates, cloud functions, and app store deployment."},
	},
	{
		UseCase:  "AI/ML Application",
		Keywords: []string{"ai", "machine learning", "ml", "model", "train", "predict", "neural", "deep learning"},
		Frontend: StackItem{Name: "React + Vite", Reason: "Fast SPA for interactive ML demos and result visualization."},
		Backend:  StackItem{Name: "FastAPI (Python)", Reason: "Python-native API framework, ideal for serving ML models."},
		Database: StackItem{Name: "PostgreSQL + Pinecone", Reason: "Relational data plus vector DB for embeddings and similarity search."},
		Hosting:  StackItem{Name: "Railway + Modal", Reason: "Railway for the API, Modal for serverless GPU compute."},
	},
	{
		UseCase:  "Portfolio / Landing Page",
		Keywords: []string{"portfolio", "landing", "personal", "homepage", "resume", "showcase"},
		Frontend: StackItem{Name: "Astro or plain HTML/CSS/JS", Reason: "Minimal framework overhead for simple, fast-loading pages."},
		Backend:  StackItem{Name: "None (static) or Formspree for contact", Reason: "No backend needed; use a form service for contact forms."},
		Database: StackItem{Name: "None needed", Reason: "Static content, no dynamic data requirements."},
		Hosting:  StackItem{Name: "Vercel, Netlify, or GitHub Pages", Reason: "Free static hosting with custom domain support."},
	},
	{
		UseCase:  "Real-Time Chat App",
		Keywords: []string{"chat", "messaging", "realtime", "real-time", "socket", "communication", "slack"},
		Frontend: StackItem{Name: "React + Vite", Reason: "Real-time UI updates with optimistic rendering."},
		Backend:  StackItem{Name: "Node.js + Socket.io or Supabase Realtime", Reason: "WebSocket-based real-time communication."},
		Database: StackItem{Name: "Supabase PostgreSQL", Reason: "Real-time subscriptions for message delivery."},
		Hosting:  StackItem{Name: "Railway + Vercel", Reason: "WebSocket support on Railway, frontend on Vercel."},
	},
	{
		UseCase:  "API / Backend Service",
		Keywords: []string{"api", "backend", "server", "microservice", "rest", "graphql", "endpoint"},
		Frontend: StackItem{Name: "N/A (API only)", Reason: "No frontend needed for pure API services."},
		Backend:  StackItem{Name: "Node.js + Express or Hono", Reason: "Lightweight, fast API framework with middleware ecosystem."},
		Database: StackItem{Name: "PostgreSQL or MongoDB", Reason: "Choose relational or document-based depending on data structure."},
		Hosting:  StackItem{Name: "Railway or Fly.io", Reason: "Easy container deployment with auto-scaling."},
	},
}
