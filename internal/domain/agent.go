package domain

// Agent is a named persona configuration. Immutable, loaded from the
// static catalog, never persisted by the core.
type Agent struct {
	ID           AgentID
	Name         string
	Description  string
	SystemPrompt string
	Model        string // empty means the provider default
	Tools        []ToolSchema
}

// ToolSchema declares one function tool the agent may call.
// Parameters is a JSON-schema object passed through to the provider.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]any
}
