// Package eval decides whether a submitted answer is correct. The
// primary path asks the configured model for a structured verdict; every
// failure mode degrades through staged parsing down to a deterministic
// local heuristic, so evaluation never returns an error to the caller.
package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"text/template"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/llm"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

// Result is the verdict for one submitted answer.
type Result struct {
	IsCorrect bool    `json:"is_correct"`
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback"`

	// Degraded marks verdicts produced by the local fallback instead of
	// the judgment service.
	Degraded bool `json:"degraded,omitempty"`
}

// Config tunes the evaluator's generation calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for verdict generation.
func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0}
}

// Evaluator scores answers against expected outcomes.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Evaluator. A nil provider means every evaluation takes
// the local heuristic path.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate scores a user answer. It never fails: provider errors and
// malformed replies are recovered via ParseVerdict and Heuristic. The
// session state is untouched; this is a pure read.
func (e *Evaluator) Evaluate(ctx context.Context, userAnswer string, q question.Question) Result {
	if e.provider == nil {
		return Heuristic(userAnswer, q)
	}

	ctx = llm.WithPurpose(ctx, "evaluation")

	userMsg, err := buildEvalMessage(userAnswer, q)
	if err != nil {
		log.Printf("eval: build prompt failed, using heuristic: %v", err)
		return Heuristic(userAnswer, q)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      evalSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		log.Printf("eval: judgment service unavailable, using heuristic: %v", err)
		return Heuristic(userAnswer, q)
	}

	verdict, err := ParseVerdict(string(resp.Content))
	if err != nil {
		log.Printf("eval: unparseable verdict, using heuristic: %v", err)
		return Heuristic(userAnswer, q)
	}
	return verdict
}

const evalSystemPrompt = `You are an expert code reviewer evaluating a developer's solution during a critical system emergency.

Evaluation criteria:
1. Correctness: does the solution address the core problem?
2. Code quality: is it readable, efficient, and following best practices?
3. Completeness: does it meet all requirements from the expected outcome?
4. Be lenient with minor syntax variations but strict on logic.

You MUST respond with ONLY a valid JSON object in this exact format, no extra text, no markdown fences:
{"is_correct": true, "score": 85, "feedback": "Solution correctly implements the required functionality."}`

var evalUserTemplate = template.Must(template.New("eval").Parse(`ORIGINAL CHALLENGE:
{{.QuestionText}}

EXPECTED SOLUTION CRITERIA:
{{.ExpectedOutcome}}

USER'S SUBMITTED SOLUTION:
{{.Answer}}`))

func buildEvalMessage(answer string, q question.Question) (string, error) {
	var buf bytes.Buffer
	err := evalUserTemplate.Execute(&buf, struct {
		QuestionText    string
		ExpectedOutcome string
		Answer          string
	}{q.QuestionText, q.ExpectedOutcome, answer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// verdictPayload is the raw JSON shape of a model verdict.
type verdictPayload struct {
	IsCorrect *bool    `json:"is_correct"`
	Score     *float64 `json:"score"`
	Feedback  string   `json:"feedback"`
}

func (p verdictPayload) toResult() Result {
	r := Result{Feedback: p.Feedback}
	if p.IsCorrect != nil {
		r.IsCorrect = *p.IsCorrect
	}
	if p.Score != nil {
		r.Score = clampScore(*p.Score)
	} else if r.IsCorrect {
		r.Score = defaultCorrectScore
	} else {
		r.Score = defaultIncorrectScore
	}
	if r.Feedback == "" {
		r.Feedback = "Evaluation completed"
	}
	return r
}

func decodeVerdict(raw []byte) (Result, bool) {
	var p verdictPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Result{}, false
	}
	if p.IsCorrect == nil && p.Score == nil {
		return Result{}, false
	}
	return p.toResult(), true
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
