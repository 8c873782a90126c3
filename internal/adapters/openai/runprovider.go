// Package openaiadapter implements the run provider and the text
// generator on the OpenAI API via github.com/sashabaranov/go-openai.
package openaiadapter

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shennylee/aios/internal/domain"
)

// PollPolicy controls how run status is awaited. Tests inject a zero
// interval so no real timers fire.
type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollPolicy waits up to two minutes per settle.
var DefaultPollPolicy = PollPolicy{Interval: time.Second, MaxAttempts: 120}

// RunProvider implements domain.RunProvider over the Assistants API.
type RunProvider struct {
	client *openai.Client
	poll   PollPolicy
}

// NewRunProvider builds a provider from an API key.
func NewRunProvider(apiKey string) *RunProvider {
	return &RunProvider{
		client: openai.NewClient(apiKey),
		poll:   DefaultPollPolicy,
	}
}

// NewRunProviderWithClient is the injectable constructor used by tests.
func NewRunProviderWithClient(client *openai.Client, poll PollPolicy) *RunProvider {
	return &RunProvider{client: client, poll: poll}
}

func (p *RunProvider) CreateThread(ctx context.Context) (domain.ThreadID, error) {
	thread, err := p.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("openai create thread: %w", err)
	}
	return domain.ThreadID(thread.ID), nil
}

func (p *RunProvider) AddUserMessage(ctx context.Context, threadID domain.ThreadID, text string) error {
	_, err := p.client.CreateMessage(ctx, string(threadID), openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})
	if err != nil {
		return fmt.Errorf("openai create message: %w", err)
	}
	return nil
}

func (p *RunProvider) CreateAssistant(ctx context.Context, agent *domain.Agent) (string, error) {
	model := agent.Model
	if model == "" {
		model = openai.GPT4o
	}

	tools := make([]openai.AssistantTool, 0, len(agent.Tools))
	for _, t := range agent.Tools {
		tools = append(tools, openai.AssistantTool{
			Type: openai.AssistantToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	name := agent.Name
	instructions := agent.SystemPrompt
	assistant, err := p.client.CreateAssistant(ctx, openai.AssistantRequest{
		Model:        model,
		Name:         &name,
		Instructions: &instructions,
		Tools:        tools,
	})
	if err != nil {
		return "", fmt.Errorf("openai create assistant: %w", err)
	}
	return assistant.ID, nil
}

func (p *RunProvider) DeleteAssistant(ctx context.Context, assistantID string) error {
	if _, err := p.client.DeleteAssistant(ctx, assistantID); err != nil {
		return fmt.Errorf("openai delete assistant: %w", err)
	}
	return nil
}

func (p *RunProvider) StartRun(ctx context.Context, threadID domain.ThreadID, assistantID string) (*domain.Run, error) {
	run, err := p.client.CreateRun(ctx, string(threadID), openai.RunRequest{
		AssistantID: assistantID,
	})
	if err != nil {
		return nil, fmt.Errorf("openai create run: %w", err)
	}
	return p.awaitSettled(ctx, threadID, run)
}

func (p *RunProvider) SubmitToolOutputs(ctx context.Context, threadID domain.ThreadID, runID string, outputs []domain.ToolOutput) (*domain.Run, error) {
	toolOutputs := make([]openai.ToolOutput, 0, len(outputs))
	for _, out := range outputs {
		toolOutputs = append(toolOutputs, openai.ToolOutput{
			ToolCallID: out.ToolCallID,
			Output:     out.Output,
		})
	}

	run, err := p.client.SubmitToolOutputs(ctx, string(threadID), runID, openai.SubmitToolOutputsRequest{
		ToolOutputs: toolOutputs,
	})
	if err != nil {
		return nil, fmt.Errorf("openai submit tool outputs: %w", err)
	}
	return p.awaitSettled(ctx, threadID, run)
}

func (p *RunProvider) LatestAssistantText(ctx context.Context, threadID domain.ThreadID) (string, error) {
	limit := 1
	order := "desc"
	list, err := p.client.ListMessage(ctx, string(threadID), &limit, &order, nil, nil, nil)
	if err != nil {
		return "", fmt.Errorf("openai list messages: %w", err)
	}
	if len(list.Messages) == 0 {
		return "", nil
	}
	// Non-text content (images etc.) yields an empty reply, not an error.
	for _, content := range list.Messages[0].Content {
		if content.Type == "text" && content.Text != nil {
			return content.Text.Value, nil
		}
		break
	}
	return "", nil
}

// awaitSettled polls the run until it leaves queued/in_progress.
func (p *RunProvider) awaitSettled(ctx context.Context, threadID domain.ThreadID, run openai.Run) (*domain.Run, error) {
	current := run
	for attempt := 0; !settled(current.Status); attempt++ {
		if attempt >= p.poll.MaxAttempts {
			return nil, fmt.Errorf("openai run %s: still %s after %d polls", current.ID, current.Status, attempt)
		}
		if err := sleepCtx(ctx, p.poll.Interval); err != nil {
			return nil, err
		}
		next, err := p.client.RetrieveRun(ctx, string(threadID), current.ID)
		if err != nil {
			return nil, fmt.Errorf("openai retrieve run: %w", err)
		}
		current = next
	}
	return translateRun(current), nil
}

func settled(status openai.RunStatus) bool {
	switch status {
	case openai.RunStatusQueued, openai.RunStatusInProgress, openai.RunStatusCancelling:
		return false
	}
	return true
}

func translateRun(run openai.Run) *domain.Run {
	out := &domain.Run{
		ID:     run.ID,
		Status: domain.RunStatus(run.Status),
	}
	if run.LastError != nil {
		out.LastError = fmt.Sprintf("%s: %s", run.LastError.Code, run.LastError.Message)
	}
	if run.Status == openai.RunStatusRequiresAction &&
		run.RequiredAction != nil &&
		run.RequiredAction.SubmitToolOutputs != nil {
		for _, call := range run.RequiredAction.SubmitToolOutputs.ToolCalls {
			out.ToolCalls = append(out.ToolCalls, domain.ToolCall{
				ID:        call.ID,
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			})
		}
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
