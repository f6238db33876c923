package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over text-generation backends. The game
// engine only ever talks to this interface; concrete providers (Gemini,
// OpenAI, Anthropic) live behind it so tests can substitute a mock.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider asks for structured output
	// and validates the reply against it before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Pravya is single-turn everywhere,
	// so this is almost always one user message.
	Messages []Message

	// Schema, when set, requests JSON conforming to this schema via the
	// provider's native structured-output mechanism. When nil the reply
	// is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape expected back from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "answer-verdict").
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated text. Validated JSON when the request had
	// a Schema, raw text bytes otherwise.
	Content json.RawMessage

	// Usage reports token counts for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
