package story

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"text/template"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/llm"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

// Config tunes narrative generation calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns defaults tuned for short chapters.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.7}
}

// Generator produces narrative chapters and hints.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator. A nil provider yields canned narrative only.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate produces the chapter wrapping a question. Never fails; every
// error path returns the canned degraded chapter.
func (g *Generator) Generate(ctx context.Context, kind Kind, q question.Question, sctx Context) Payload {
	if g.provider == nil {
		return fallbackChapter(q)
	}

	ctx = llm.WithPurpose(ctx, "narrative")

	prompt, err := buildPrompt(kind, q, sctx)
	if err != nil {
		log.Printf("story: build prompt failed: %v", err)
		return fallbackChapter(q)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:   systemPromptFor(kind),
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema: &llm.Schema{
			Name:        narrativeSchema.Name,
			Description: "One narrative chapter embedding a technical challenge",
			Definition:  narrativeSchema.Definition,
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		log.Printf("story: generation unavailable, serving fallback: %v", err)
		return fallbackChapter(q)
	}

	chapter, err := decodeChapter(resp.Content)
	if err != nil {
		log.Printf("story: unusable chapter, serving fallback: %v", err)
		return fallbackChapter(q)
	}
	return chapter
}

// Hint produces an in-character nudge toward the question's concept.
// Advisory only; callers must not let it touch session state.
func (g *Generator) Hint(ctx context.Context, q question.Question, who string) (string, error) {
	if g.provider == nil {
		return "", fmt.Errorf("hint generation unavailable: no provider configured")
	}

	ctx = llm.WithPurpose(ctx, "hint")

	prompt, err := buildHintPrompt(q, who)
	if err != nil {
		return "", fmt.Errorf("build hint prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      hintSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   256,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate hint: %w", err)
	}
	return string(resp.Content), nil
}

// fallbackChapter is the static-interference chapter served whenever
// generation fails. Clearly degraded, still playable.
func fallbackChapter(q question.Question) Payload {
	return Payload{
		Text: fmt.Sprintf("The connection is failing... reality is tearing at the seams. "+
			"A fragment of a task comes through the static: %s", q.QuestionText),
		CallToAction: "Decipher the fragment and restore the connection.",
		Degraded:     true,
	}
}

func buildPrompt(kind Kind, q question.Question, sctx Context) (string, error) {
	tmpl := storyUserTemplate
	switch kind {
	case KindImposter:
		tmpl = imposterUserTemplate
	case KindBoss:
		tmpl = bossUserTemplate
	}

	data := struct {
		Mastery           string
		Vitality          float64
		Persona           string
		Streak            int
		QuestionsAnswered int
		WasCorrect        string
		EarnedBadge       string
		Title             string
		QuestionText      string
	}{
		Mastery:           sctx.Mastery,
		Vitality:          sctx.Vitality,
		Persona:           persona(sctx.Vitality),
		Streak:            sctx.Streak,
		QuestionsAnswered: sctx.QuestionsAnswered,
		WasCorrect:        formatVerdict(sctx.WasCorrect),
		EarnedBadge:       sctx.EarnedBadge,
		Title:             q.Title,
		QuestionText:      q.QuestionText,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildHintPrompt(q question.Question, who string) (string, error) {
	var buf bytes.Buffer
	err := hintUserTemplate.Execute(&buf, struct {
		Persona      string
		QuestionText string
	}{who, q.QuestionText})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatVerdict(v *bool) string {
	if v == nil {
		return "none"
	}
	if *v {
		return "correct"
	}
	return "incorrect"
}

var storyUserTemplate = template.Must(template.New("story").Parse(`SYSTEM STATE:
- Mastery: {{.Mastery}}
- Agent vitality: {{printf "%.0f" .Vitality}}%
- Narrator: {{.Persona}}
- Streak: {{.Streak}}
- Questions answered this session: {{.QuestionsAnswered}}

PREVIOUS RESULT:
- Verdict: {{.WasCorrect}}
- Earned badge: {{if .EarnedBadge}}{{.EarnedBadge}}{{else}}none{{end}}

NEW ANOMALY:
- Concept: {{.Title}}
- Task: {{.QuestionText}}

Write the next scene.`))

var imposterUserTemplate = template.Must(template.New("imposter").Parse(`NEW ANOMALY:
- Concept: {{.Title}}
- Task: {{.QuestionText}}

Write a single chapter from the imposter's perspective.`))

var bossUserTemplate = template.Must(template.New("boss").Parse(`NEW ANOMALY:
- Concept: {{.Title}}
- Task: {{.QuestionText}}

Write the next turn of your boss battle.`))

var hintUserTemplate = template.Must(template.New("hint").Parse(`Character: {{.Persona}}
Challenge: {{.QuestionText}}

Give one short in-character hint that points at the underlying concept without revealing the solution.`))
