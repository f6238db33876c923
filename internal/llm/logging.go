package llm

import (
	"context"
	"log"
	"time"
)

// RequestEvent captures one generation call for the request log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventSink receives request events. The store package implements this
// against the llm_requests table; tests use a slice-backed fake.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}

// loggingProvider records every generation call as a RequestEvent.
type loggingProvider struct {
	inner Provider
	sink  EventSink
}

// WithLogging wraps a Provider with request-event logging. A nil sink
// disables logging without changing behavior.
func WithLogging(p Provider, sink EventSink) Provider {
	if sink == nil {
		return p
	}
	return &loggingProvider{inner: p, sink: sink}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// The event log is best effort; a logging failure never fails the call.
	if sinkErr := l.sink.AppendLLMRequest(ctx, ev); sinkErr != nil {
		log.Printf("warning: failed to record LLM request event: %v", sinkErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
