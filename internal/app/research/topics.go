package research

// Topic is one fixed weekly search.
type Topic struct {
	ID    string
	Query string
	Name  string
}

// DefaultTopics is the weekly research slate.
var DefaultTopics = []Topic{
	{
		ID:    "academic-research",
		Query: "hiring interview research study field experiment academic paper published 2024 2025",
		Name:  "Academic Hiring Research",
	},
	{
		ID:    "competitors",
		Query: "Alex.com Sapia.ai HireVue Paradox Metaview BrightHire Pillar Tengai news funding product",
		Name:  "AI Interview Competitors",
	},
	{
		ID:    "voice-ai",
		Query: "voice AI conversational AI speech technology interview automation 2024 2025",
		Name:  "Voice AI & Conversational AI",
	},
	{
		ID:    "anz-market",
		Query: "Australia New Zealand recruitment talent acquisition hiring market trends 2024 2025",
		Name:  "ANZ Recruiting Market",
	},
	{
		ID:    "uk-us-market",
		Query: "UK USA United Kingdom United States recruitment talent acquisition hiring trends 2024 2025",
		Name:  "UK & US Recruiting Market",
	},
	{
		ID:    "ai-regulation",
		Query: "AI hiring regulation bias audit law Australia USA UK EU EEOC algorithmic 2024 2025",
		Name:  "AI Hiring Regulation",
	},
	{
		ID:    "recruitment-funding",
		Query: "HR tech recruitment technology startup funding seed Series A B C D 2024 2025",
		Name:  "Recruitment Tech Funding",
	},
	{
		ID:    "future-of-work",
		Query: "future of work future of hiring skills based hiring AI recruitment trends 2025",
		Name:  "Future of Work & Hiring",
	},
}
