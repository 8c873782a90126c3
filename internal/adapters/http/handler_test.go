package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/shennylee/aios/internal/adapters/http"
	"github.com/shennylee/aios/internal/adapters/storage/memory"
	"github.com/shennylee/aios/internal/app/orchestrator"
	"github.com/shennylee/aios/internal/app/research"
	"github.com/shennylee/aios/internal/app/tools"
	"github.com/shennylee/aios/internal/domain"
)

type stubProvider struct {
	failRun bool
}

func (s *stubProvider) CreateThread(context.Context) (domain.ThreadID, error) {
	return "thread-1", nil
}

func (s *stubProvider) AddUserMessage(context.Context, domain.ThreadID, string) error {
	return nil
}

func (s *stubProvider) CreateAssistant(context.Context, *domain.Agent) (string, error) {
	return "asst-1", nil
}

func (s *stubProvider) DeleteAssistant(context.Context, string) error { return nil }

func (s *stubProvider) StartRun(context.Context, domain.ThreadID, string) (*domain.Run, error) {
	if s.failRun {
		return &domain.Run{ID: "run-1", Status: domain.RunStatusFailed, LastError: "boom"}, nil
	}
	return &domain.Run{ID: "run-1", Status: domain.RunStatusCompleted}, nil
}

func (s *stubProvider) SubmitToolOutputs(context.Context, domain.ThreadID, string, []domain.ToolOutput) (*domain.Run, error) {
	return nil, errors.New("not used")
}

func (s *stubProvider) LatestAssistantText(context.Context, domain.ThreadID) (string, error) {
	return "hello from the agent", nil
}

type stubSearch struct{}

func (stubSearch) Search(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
	return []domain.SearchResult{{Title: "hit", URL: "https://example.com", Content: "c"}}, nil
}

type stubGen struct{}

func (stubGen) GenerateText(_ context.Context, req domain.GenerationRequest) (string, error) {
	return "text for " + req.Model, nil
}

type stubEmail struct{}

func (stubEmail) Send(context.Context, domain.Email) error { return nil }

func newTestServer(t *testing.T, provider domain.RunProvider, cronSecret string) http.Handler {
	t.Helper()

	store := memory.NewContactStore()
	registry := tools.NewRegistry(store, stubEmail{}, "from@example.com", "to@example.com")
	orch := orchestrator.New(provider, registry)

	pipeline := research.New(stubSearch{}, stubGen{}, stubEmail{}, "from@example.com", "to@example.com",
		research.WithTopics([]research.Topic{{ID: "a", Query: "q", Name: "Topic A"}}),
		research.WithSleep(func(time.Duration) {}),
	)

	return httpadapter.NewServer(orch, pipeline, cronSecret)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatTurn(t *testing.T) {
	srv := newTestServer(t, &stubProvider{}, "")

	body := []byte(`{"agent_id":"comms-advisor","message":"hey"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "thread-1", resp["thread_id"])
	assert.Equal(t, "hello from the agent", resp["message"])
}

func TestChatUnknownAgent(t *testing.T) {
	srv := newTestServer(t, &stubProvider{}, "")

	body := []byte(`{"agent_id":"ghost","message":"hey"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Agent not found")
}

func TestChatRunFailure(t *testing.T) {
	srv := newTestServer(t, &stubProvider{failRun: true}, "")

	body := []byte(`{"agent_id":"comms-advisor","message":"hey"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Assistant run failed")
}

func TestChatValidation(t *testing.T) {
	srv := newTestServer(t, &stubProvider{}, "")

	body := []byte(`{"agent_id":"comms-advisor"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is required")
}

func TestWeeklyResearch(t *testing.T) {
	srv := newTestServer(t, &stubProvider{}, "")

	req := httptest.NewRequest(http.MethodPost, "/research/weekly", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestWeeklyResearchRequiresCronSecret(t *testing.T) {
	srv := newTestServer(t, &stubProvider{}, "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/research/weekly", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/research/weekly", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
