package openaiadapter

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shennylee/aios/internal/domain"
)

// Generator implements domain.Generator via the Chat Completions API.
type Generator struct {
	client       *openai.Client
	defaultModel string
}

// NewGenerator builds a generator from an API key.
func NewGenerator(apiKey, defaultModel string) *Generator {
	return &Generator{client: openai.NewClient(apiKey), defaultModel: defaultModel}
}

// NewGeneratorWithClient is the injectable constructor used by tests.
func NewGeneratorWithClient(client *openai.Client, defaultModel string) *Generator {
	return &Generator{client: client, defaultModel: defaultModel}
}

func (g *Generator) GenerateText(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if req.Prompt == "" {
		return "", errors.New("openai generate: prompt is required")
	}
	model := req.Model
	if model == "" {
		model = g.defaultModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
