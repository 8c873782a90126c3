package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shennylee/aios/internal/adapters/storage/memory"
	"github.com/shennylee/aios/internal/app/orchestrator"
	"github.com/shennylee/aios/internal/app/tools"
	"github.com/shennylee/aios/internal/domain"
)

type nopEmail struct{}

func (nopEmail) Send(context.Context, domain.Email) error { return nil }

// fakeProvider scripts run snapshots: StartRun returns the first,
// every SubmitToolOutputs advances to the next. It counts assistant
// lifecycle calls so tests can assert the cleanup invariant.
type fakeProvider struct {
	mu sync.Mutex

	script    []*domain.Run
	scriptIdx int

	threadsCreated    int
	messagesAppended  []string
	assistantsCreated int
	assistantsDeleted []string
	submissions       [][]domain.ToolOutput

	createThreadErr    error
	addMessageErr      error
	createAssistantErr error
	startRunErr        error
	submitErr          error
	deleteErr          error

	finalText string
}

func (f *fakeProvider) CreateThread(context.Context) (domain.ThreadID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createThreadErr != nil {
		return "", f.createThreadErr
	}
	f.threadsCreated++
	return domain.ThreadID(fmt.Sprintf("thread-%d", f.threadsCreated)), nil
}

func (f *fakeProvider) AddUserMessage(_ context.Context, _ domain.ThreadID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addMessageErr != nil {
		return f.addMessageErr
	}
	f.messagesAppended = append(f.messagesAppended, text)
	return nil
}

func (f *fakeProvider) CreateAssistant(_ context.Context, _ *domain.Agent) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createAssistantErr != nil {
		return "", f.createAssistantErr
	}
	f.assistantsCreated++
	return fmt.Sprintf("asst-%d", f.assistantsCreated), nil
}

func (f *fakeProvider) DeleteAssistant(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assistantsDeleted = append(f.assistantsDeleted, id)
	return f.deleteErr
}

func (f *fakeProvider) StartRun(context.Context, domain.ThreadID, string) (*domain.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startRunErr != nil {
		return nil, f.startRunErr
	}
	return f.next()
}

func (f *fakeProvider) SubmitToolOutputs(_ context.Context, _ domain.ThreadID, _ string, outputs []domain.ToolOutput) (*domain.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submissions = append(f.submissions, outputs)
	return f.next()
}

func (f *fakeProvider) LatestAssistantText(context.Context, domain.ThreadID) (string, error) {
	return f.finalText, nil
}

func (f *fakeProvider) next() (*domain.Run, error) {
	if f.scriptIdx >= len(f.script) {
		return nil, errors.New("fakeProvider: script exhausted")
	}
	run := f.script[f.scriptIdx]
	f.scriptIdx++
	return run, nil
}

func newTestOrchestrator(t *testing.T, provider *fakeProvider) *orchestrator.Orchestrator {
	t.Helper()
	store := memory.NewContactStore()
	_, err := store.Create(context.Background(), &domain.Contact{Name: "Shenny Lee", Type: domain.TypeFounder})
	require.NoError(t, err)
	registry := tools.NewRegistry(store, nopEmail{}, "from@example.com", "to@example.com")
	return orchestrator.New(provider, registry)
}

func TestHandleTurnCompletesWithoutTools(t *testing.T) {
	provider := &fakeProvider{
		script:    []*domain.Run{{ID: "run-1", Status: domain.RunStatusCompleted}},
		finalText: "hey! here's my take.",
	}
	orch := newTestOrchestrator(t, provider)

	out, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "latest trends",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ThreadID("thread-1"), out.ThreadID)
	assert.Equal(t, "hey! here's my take.", out.Message)
	assert.Equal(t, []string{"latest trends"}, provider.messagesAppended)
	assert.Equal(t, 1, provider.assistantsCreated)
	assert.Equal(t, []string{"asst-1"}, provider.assistantsDeleted)
}

func TestHandleTurnReusesSuppliedThread(t *testing.T) {
	provider := &fakeProvider{
		script:    []*domain.Run{{ID: "run-1", Status: domain.RunStatusCompleted}},
		finalText: "still here",
	}
	orch := newTestOrchestrator(t, provider)

	out, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID:  "comms-advisor",
		Message:  "follow-up",
		ThreadID: "thread-existing",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ThreadID("thread-existing"), out.ThreadID)
	assert.Zero(t, provider.threadsCreated)
}

func TestHandleTurnUnknownAgentTouchesNothing(t *testing.T) {
	provider := &fakeProvider{}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "ghost",
		Message: "hi",
	})
	require.ErrorIs(t, err, domain.ErrAgentNotFound)

	assert.Zero(t, provider.threadsCreated)
	assert.Zero(t, provider.assistantsCreated)
	assert.Empty(t, provider.assistantsDeleted)
}

func TestHandleTurnToolRoundTrip(t *testing.T) {
	provider := &fakeProvider{
		script: []*domain.Run{
			{
				ID:     "run-1",
				Status: domain.RunStatusRequiresAction,
				ToolCalls: []domain.ToolCall{
					{ID: "call-1", Name: "search_crm", Arguments: `{"query":"Shen"}`},
					{ID: "call-2", Name: "bogus_tool", Arguments: `{}`},
				},
			},
			{ID: "run-1", Status: domain.RunStatusCompleted},
		},
		finalText: "found her.",
	}
	orch := newTestOrchestrator(t, provider)

	out, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "who is Shen?",
	})
	require.NoError(t, err)
	assert.Equal(t, "found her.", out.Message)

	require.Len(t, provider.submissions, 1)
	batch := provider.submissions[0]
	require.Len(t, batch, 2)

	byID := map[string]string{}
	for _, o := range batch {
		byID[o.ToolCallID] = o.Output
	}
	require.Len(t, byID, 2, "each tool_call_id present exactly once")

	var searchResult map[string]any
	require.NoError(t, json.Unmarshal([]byte(byID["call-1"]), &searchResult))
	assert.Equal(t, true, searchResult["found"])

	var bogusResult map[string]any
	require.NoError(t, json.Unmarshal([]byte(byID["call-2"]), &bogusResult))
	assert.Equal(t, "Unknown tool: bogus_tool", bogusResult["error"])

	assert.Equal(t, []string{"asst-1"}, provider.assistantsDeleted)
}

func TestHandleTurnMultipleSuspensions(t *testing.T) {
	provider := &fakeProvider{
		script: []*domain.Run{
			{
				ID:        "run-1",
				Status:    domain.RunStatusRequiresAction,
				ToolCalls: []domain.ToolCall{{ID: "call-1", Name: "search_crm", Arguments: `{"query":"Shen"}`}},
			},
			{
				ID:        "run-1",
				Status:    domain.RunStatusRequiresAction,
				ToolCalls: []domain.ToolCall{{ID: "call-2", Name: "search_crm", Arguments: `{"query":"Lee"}`}},
			},
			{ID: "run-1", Status: domain.RunStatusCompleted},
		},
		finalText: "done",
	}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "dig around",
	})
	require.NoError(t, err)

	require.Len(t, provider.submissions, 2)
	assert.Equal(t, "call-1", provider.submissions[0][0].ToolCallID)
	assert.Equal(t, "call-2", provider.submissions[1][0].ToolCallID)
	assert.Equal(t, []string{"asst-1"}, provider.assistantsDeleted)
}

func TestHandleTurnRunFailed(t *testing.T) {
	provider := &fakeProvider{
		script: []*domain.Run{{ID: "run-1", Status: domain.RunStatusFailed, LastError: "rate_limit_exceeded: slow down"}},
	}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "hi",
	})
	require.ErrorIs(t, err, domain.ErrRunFailed)
	assert.Contains(t, err.Error(), "rate_limit_exceeded")
	assert.Equal(t, []string{"asst-1"}, provider.assistantsDeleted, "cleanup still runs on run failure")
}

func TestHandleTurnStartRunErrorStillCleansUp(t *testing.T) {
	provider := &fakeProvider{startRunErr: errors.New("provider exploded")}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "hi",
	})
	require.Error(t, err)
	assert.Equal(t, []string{"asst-1"}, provider.assistantsDeleted)
}

func TestHandleTurnSubmitErrorStillCleansUp(t *testing.T) {
	provider := &fakeProvider{
		script: []*domain.Run{{
			ID:        "run-1",
			Status:    domain.RunStatusRequiresAction,
			ToolCalls: []domain.ToolCall{{ID: "call-1", Name: "search_crm", Arguments: `{"query":"x"}`}},
		}},
		submitErr: errors.New("submit rejected"),
	}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "hi",
	})
	require.Error(t, err)
	assert.Equal(t, []string{"asst-1"}, provider.assistantsDeleted)
}

func TestHandleTurnCreateAssistantErrorDeletesNothing(t *testing.T) {
	provider := &fakeProvider{createAssistantErr: errors.New("quota")}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "hi",
	})
	require.Error(t, err)
	assert.Empty(t, provider.assistantsDeleted, "nothing provisioned, nothing to delete")
}

func TestHandleTurnDeleteFailureDoesNotMaskResult(t *testing.T) {
	provider := &fakeProvider{
		script:    []*domain.Run{{ID: "run-1", Status: domain.RunStatusCompleted}},
		finalText: "all good",
		deleteErr: errors.New("409 assistant busy"),
	}
	orch := newTestOrchestrator(t, provider)

	out, err := orch.HandleTurn(context.Background(), orchestrator.TurnInput{
		AgentID: "comms-advisor",
		Message: "hi",
	})
	require.NoError(t, err, "cleanup errors are swallowed")
	assert.Equal(t, "all good", out.Message)
	assert.Len(t, provider.assistantsDeleted, 1)
}
