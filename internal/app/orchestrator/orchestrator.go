// Package orchestrator drives one conversational turn through the
// run provider: thread continuation, ephemeral assistant provisioning,
// run execution, tool-call suspensions and guaranteed teardown.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shennylee/aios/internal/app/agents"
	"github.com/shennylee/aios/internal/app/tools"
	"github.com/shennylee/aios/internal/domain"
	"github.com/shennylee/aios/internal/observability"
)

// Orchestrator owns the per-turn run lifecycle.
type Orchestrator struct {
	provider domain.RunProvider
	registry *tools.Registry
	lookup   func(domain.AgentID) (*domain.Agent, bool)
}

// New builds an orchestrator over the given provider and tool registry,
// resolving agents against the static catalog.
func New(provider domain.RunProvider, registry *tools.Registry) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		registry: registry,
		lookup:   agents.Lookup,
	}
}

type TurnInput struct {
	AgentID  domain.AgentID
	Message  string
	ThreadID domain.ThreadID // empty starts a new conversation
}

type TurnOutput struct {
	ThreadID domain.ThreadID
	Message  string
}

// HandleTurn executes one turn end to end. The agent lookup happens
// before any provider resource is created; once the ephemeral assistant
// exists, its deletion is attempted on every exit path.
func (o *Orchestrator) HandleTurn(ctx context.Context, in TurnInput) (*TurnOutput, error) {
	agent, ok := o.lookup(in.AgentID)
	if !ok {
		return nil, domain.ErrAgentNotFound
	}

	log := observability.LoggerFromContext(ctx).With("agent", agent.ID)

	threadID := in.ThreadID
	if threadID == "" {
		created, err := o.provider.CreateThread(ctx)
		if err != nil {
			return nil, fmt.Errorf("create thread: %w", err)
		}
		threadID = created
		log.Info("thread created", "thread_id", threadID)
	}
	log = log.With("thread_id", threadID)

	if err := o.provider.AddUserMessage(ctx, threadID, in.Message); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}

	assistantID, err := o.provider.CreateAssistant(ctx, agent)
	if err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}
	// Best-effort delete on every exit path, including cancellation.
	// A leaked assistant is a resource and cost bug, so the cleanup
	// context is detached from the request context.
	defer func() {
		if derr := o.provider.DeleteAssistant(context.WithoutCancel(ctx), assistantID); derr != nil {
			log.Warn("assistant cleanup failed", "assistant_id", assistantID, "error", derr)
		}
	}()

	run, err := o.provider.StartRun(ctx, threadID, assistantID)
	if err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	for run.Status == domain.RunStatusRequiresAction {
		outputs := o.resolveToolCalls(ctx, run.ToolCalls)
		run, err = o.provider.SubmitToolOutputs(ctx, threadID, run.ID, outputs)
		if err != nil {
			return nil, fmt.Errorf("submit tool outputs: %w", err)
		}
	}

	if run.Status != domain.RunStatusCompleted {
		log.Error("run did not complete", "status", run.Status, "last_error", run.LastError)
		return nil, fmt.Errorf("%w: status %s: %s", domain.ErrRunFailed, run.Status, run.LastError)
	}

	text, err := o.provider.LatestAssistantText(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("read assistant reply: %w", err)
	}

	log.Info("turn completed")
	return &TurnOutput{ThreadID: threadID, Message: text}, nil
}

// resolveToolCalls executes every pending call concurrently and returns
// exactly one output per call. Calls within one suspension carry no
// ordering dependency, but the batch is only submitted complete.
func (o *Orchestrator) resolveToolCalls(ctx context.Context, calls []domain.ToolCall) []domain.ToolOutput {
	outputs := make([]domain.ToolOutput, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call domain.ToolCall) {
			defer wg.Done()
			outputs[i] = domain.ToolOutput{
				ToolCallID: call.ID,
				Output:     o.executeCall(ctx, call),
			}
		}(i, call)
	}
	wg.Wait()

	return outputs
}

// executeCall dispatches one call and serializes its result. Handler
// failures come back as error payloads so the run is never left with a
// dangling unresolved tool call.
func (o *Orchestrator) executeCall(ctx context.Context, call domain.ToolCall) string {
	log := observability.LoggerFromContext(ctx)
	log.Info("executing tool", "tool", call.Name, "tool_call_id", call.ID)

	var result map[string]any

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			result = map[string]any{"error": fmt.Sprintf("invalid tool arguments: %v", err)}
		}
	}
	if result == nil {
		result = o.registry.Execute(ctx, call.Name, args)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return `{"error":"tool result could not be serialized"}`
	}
	return string(raw)
}
