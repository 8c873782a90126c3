// Package research runs the weekly research-and-content pipeline:
// gather web results per topic, summarize each topic, synthesize an
// executive summary, draft platform content, and deliver the report by
// email. A failed topic search degrades to an empty result set; a
// failure in any later stage aborts the run.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shennylee/aios/internal/app/agents"
	"github.com/shennylee/aios/internal/domain"
	"github.com/shennylee/aios/internal/observability"
)

const (
	summaryModel   = "gpt-4o-mini"
	synthesisModel = "gpt-4o"

	// pacing between external calls, rate-limit avoidance not retry
	searchPacing  = time.Second
	summaryPacing = 500 * time.Millisecond
)

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("research pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// TopicResult is everything gathered for one topic.
type TopicResult struct {
	Topic   string
	Results []domain.SearchResult
}

// Stats summarizes one pipeline run for the caller.
type Stats struct {
	TopicsSearched int `json:"topicsSearched"`
	TotalSources   int `json:"totalSources"`
}

// Pipeline wires the search, generation and delivery collaborators.
type Pipeline struct {
	search domain.SearchProvider
	gen    domain.Generator
	email  domain.EmailSender
	from   string
	to     string

	topics []Topic
	sleep  func(time.Duration)
	now    func() time.Time
}

// Option customizes a pipeline.
type Option func(*Pipeline)

// WithTopics overrides the default topic slate.
func WithTopics(topics []Topic) Option {
	return func(p *Pipeline) { p.topics = topics }
}

// WithSleep replaces the pacing sleep; tests pass a no-op.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Pipeline) { p.sleep = sleep }
}

// WithClock replaces the clock used for the report date.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New builds a pipeline over the default topic slate.
func New(search domain.SearchProvider, gen domain.Generator, email domain.EmailSender, from, to string, opts ...Option) *Pipeline {
	p := &Pipeline{
		search: search,
		gen:    gen,
		email:  email,
		from:   from,
		to:     to,
		topics: DefaultTopics,
		sleep:  time.Sleep,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes all stages sequentially and emails the report.
func (p *Pipeline) Run(ctx context.Context) (*Stats, error) {
	log := observability.LoggerFromContext(ctx).With("component", "research")
	log.Info("weekly research started", "topics", len(p.topics))

	results := p.gatherResearch(ctx, log)

	summaries, err := p.summarizeTopics(ctx, log, results)
	if err != nil {
		return nil, &StageError{Stage: "summarize", Err: err}
	}
	combined := strings.Join(summaries, "\n\n---\n\n")

	log.Info("generating executive summary")
	executive, err := p.gen.GenerateText(ctx, domain.GenerationRequest{
		Model:       synthesisModel,
		System:      systemPromptFor("research"),
		Prompt:      executivePrompt(combined),
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		return nil, &StageError{Stage: "synthesize", Err: err}
	}

	log.Info("generating content drafts")
	content, err := p.gen.GenerateText(ctx, domain.GenerationRequest{
		Model:       synthesisModel,
		System:      systemPromptFor("content"),
		Prompt:      contentPrompt(executive, combined),
		Temperature: 0.8,
		MaxTokens:   3500,
	})
	if err != nil {
		return nil, &StageError{Stage: "content", Err: err}
	}

	log.Info("delivering report")
	html := renderReport(executive, combined, content, results)
	err = p.email.Send(ctx, domain.Email{
		From:    p.from,
		To:      p.to,
		Subject: fmt.Sprintf("📊 Weekly Research Report - %s", p.now().Format("Monday, January 2, 2006")),
		HTML:    html,
	})
	if err != nil {
		return nil, &StageError{Stage: "deliver", Err: err}
	}

	stats := &Stats{TopicsSearched: len(results), TotalSources: totalSources(results)}
	log.Info("weekly research complete", "sources", stats.TotalSources)
	return stats, nil
}

// gatherResearch searches every topic. A failed search degrades that
// topic to an empty result set so one flaky query cannot sink the run.
func (p *Pipeline) gatherResearch(ctx context.Context, log *slog.Logger) []TopicResult {
	results := make([]TopicResult, 0, len(p.topics))
	for i, topic := range p.topics {
		if i > 0 {
			p.sleep(searchPacing)
		}
		log.Info("searching topic", "topic", topic.Name)

		hits, err := p.search.Search(ctx, topic.Query, domain.SearchOptions{
			Depth:      "advanced",
			MaxResults: 10,
			Topic:      "news",
		})
		if err != nil {
			log.Error("topic search failed", "topic", topic.Name, "error", err)
			hits = nil
		}
		results = append(results, TopicResult{Topic: topic.Name, Results: hits})
	}
	return results
}

func (p *Pipeline) summarizeTopics(ctx context.Context, log *slog.Logger, results []TopicResult) ([]string, error) {
	summaries := make([]string, 0, len(results))
	for i, topic := range results {
		if i > 0 {
			p.sleep(summaryPacing)
		}

		if len(topic.Results) == 0 {
			summaries = append(summaries, fmt.Sprintf("### %s\nNo significant findings this week.\n", topic.Topic))
			continue
		}

		log.Info("summarizing topic", "topic", topic.Topic)
		summary, err := p.gen.GenerateText(ctx, domain.GenerationRequest{
			Model:       summaryModel,
			System:      "You are a research analyst specializing in AI hiring technology and recruitment. Provide detailed, actionable summaries.",
			Prompt:      topicSummaryPrompt(topic),
			Temperature: 0.5,
			MaxTokens:   1000,
		})
		if err != nil {
			return nil, fmt.Errorf("topic %q: %w", topic.Topic, err)
		}
		summaries = append(summaries, fmt.Sprintf("### %s\n%s\n", topic.Topic, summary))
	}
	return summaries, nil
}

func totalSources(results []TopicResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Results)
	}
	return n
}

// systemPromptFor pulls a persona prompt from the agent catalog so the
// pipeline speaks with the same voice as the chat agents.
func systemPromptFor(id domain.AgentID) string {
	if agent, ok := agents.Lookup(id); ok {
		return agent.SystemPrompt
	}
	return ""
}
