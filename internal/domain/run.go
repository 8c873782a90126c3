package domain

// RunStatus is the provider-side state of one run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusExpired        RunStatus = "expired"
)

// Settled reports whether the run has left the transient
// queued/in_progress states.
func (s RunStatus) Settled() bool {
	return s != RunStatusQueued && s != RunStatusInProgress
}

// Run is a snapshot of one run as last observed from the provider.
// ToolCalls is populated only while Status is requires_action.
type Run struct {
	ID        string
	Status    RunStatus
	ToolCalls []ToolCall
	LastError string
}

// ToolCall is one pending function call emitted by a suspended run.
// Arguments is the raw JSON payload as sent by the provider.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolOutput is the resolved result for exactly one ToolCall.
type ToolOutput struct {
	ToolCallID string
	Output     string
}
