package domain

import "context"

// RunProvider is the external LLM-run service the orchestrator drives.
// StartRun and SubmitToolOutputs block until the run settles (leaves
// queued/in_progress), so callers only ever observe settled snapshots.
type RunProvider interface {
	CreateThread(ctx context.Context) (ThreadID, error)
	AddUserMessage(ctx context.Context, threadID ThreadID, text string) error

	// CreateAssistant provisions an ephemeral assistant from the agent
	// definition. The caller owns its lifetime and must delete it.
	CreateAssistant(ctx context.Context, agent *Agent) (string, error)
	DeleteAssistant(ctx context.Context, assistantID string) error

	StartRun(ctx context.Context, threadID ThreadID, assistantID string) (*Run, error)
	SubmitToolOutputs(ctx context.Context, threadID ThreadID, runID string, outputs []ToolOutput) (*Run, error)

	// LatestAssistantText returns the first text block of the most
	// recent assistant message, or "" when the content is not text.
	LatestAssistantText(ctx context.Context, threadID ThreadID) (string, error)
}

// ContactStore defines CRM persistence.
type ContactStore interface {
	// QueryByName returns every contact whose display name contains
	// query as a substring. The match is case-sensitive.
	QueryByName(ctx context.Context, query string) ([]*Contact, error)
	Create(ctx context.Context, c *Contact) (ContactID, error)
	Update(ctx context.Context, id ContactID, patch ContactPatch) error
	GetNotes(ctx context.Context, id ContactID) (string, error)
}

// EmailSender delivers one message. Fire-and-forget, no confirmation.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}

// Email is one outbound message.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Generator produces plain text completions for the research pipeline.
type Generator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}

// GenerationRequest is one completion call.
type GenerationRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// SearchProvider runs web searches for the research pipeline.
type SearchProvider interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions tune one search call.
type SearchOptions struct {
	Depth      string // "basic" or "advanced"
	MaxResults int
	Topic      string // e.g. "news"
}

// SearchResult is one hit from the search provider.
type SearchResult struct {
	Title         string
	URL           string
	Content       string
	PublishedDate string
}
