// Package llm provides alternative Generator backends for the research
// pipeline: Vertex AI (Gemini) and a mock for local dev.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shennylee/aios/internal/domain"
)

// VertexGenerator implements domain.Generator on Vertex AI (Gemini).
// The request's Model field is ignored (pipeline stage names are
// OpenAI model ids) and the configured Gemini model is used instead.
type VertexGenerator struct {
	client    *genai.Client
	modelName string
}

// NewVertexGenerator creates a Vertex-backed generator.
func NewVertexGenerator(ctx context.Context, projectID, location, modelName string) (*VertexGenerator, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("vertex generator: project and location are required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexGenerator{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements domain.Generator using Vertex AI.
func (v *VertexGenerator) GenerateText(ctx context.Context, req domain.GenerationRequest) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	temp := req.Temperature
	maxTokens := int32(req.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 8192
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}
	return text, nil
}
