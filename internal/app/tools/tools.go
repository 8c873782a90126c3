// Package tools implements the dispatchable tools agents call during a
// run: CRM lookups and mutations plus outbound email. Tool failures
// never abort a turn: the registry folds them into error payloads so
// the run can keep reasoning.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/shennylee/aios/internal/domain"
	"github.com/shennylee/aios/internal/observability"
)

// Tool is one dispatchable action. Call returns a JSON-serializable
// payload; errors are folded into payloads by the registry.
type Tool interface {
	Name() string
	Call(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Registry maps tool names to handlers.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry builds a registry with the standard tool set wired to the
// given collaborators.
func NewRegistry(store domain.ContactStore, email domain.EmailSender, from, to string) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	r.Register(&SearchCRMTool{Store: store})
	r.Register(&CreateContactTool{Store: store, Now: time.Now})
	r.Register(&UpdateContactTool{Store: store, Now: time.Now})
	r.Register(&SetReminderTool{Store: store, Now: time.Now})
	r.Register(&SendEmailTool{Email: email, From: from, To: to})
	return r
}

// Register adds or replaces a tool by name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Execute dispatches one tool call. It never returns an error: unknown
// names and handler failures both come back as {"error": ...} payloads
// so a single bad call degrades to a visible tool output instead of
// failing the run.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) map[string]any {
	log := observability.LoggerFromContext(ctx).With("tool", name)

	t, ok := r.tools[name]
	if !ok {
		log.Warn("unknown tool requested")
		return map[string]any{"error": fmt.Sprintf("Unknown tool: %s", name)}
	}

	result, err := t.Call(ctx, args)
	if err != nil {
		log.Error("tool failed", "error", err)
		return map[string]any{"error": err.Error()}
	}

	log.Info("tool executed")
	return result
}

// getString extracts a string argument, tolerating absent keys and
// non-string values.
func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
