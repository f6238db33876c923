package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/llm"
)

// EventRepo records LLM request events. Implements llm.EventSink.
type EventRepo struct {
	db *sql.DB
}

// AppendLLMRequest inserts one request event.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO llm_requests
		(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		ev.Provider, ev.Model, ev.Purpose, ev.InputTokens, ev.OutputTokens,
		ev.LatencyMs, ev.Success, ev.ErrorMessage, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}
