package llm

import (
	"context"
	"fmt"

	"github.com/shennylee/aios/internal/domain"
)

// MockGenerator echoes a canned completion. Used when AIOS_USE_MOCK_LLM
// is set so the pipeline can be exercised without credentials.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) GenerateText(_ context.Context, req domain.GenerationRequest) (string, error) {
	return fmt.Sprintf("[mock completion for %d-char prompt]", len(req.Prompt)), nil
}
