package game

import (
	"context"
	"fmt"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/eval"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/story"
)

// Engine orchestrates one player turn: evaluate the answer, mutate the
// state, decide the next tier, fetch the next question, and wrap it in
// narrative. All collaborators are injected so tests substitute mocks
// without touching process state.
type Engine struct {
	evaluator *eval.Evaluator
	narrator  *story.Generator
	selector  *question.Selector
	repo      question.Repo
	policy    Policy
}

// NewEngine wires the advance cycle. evaluator and narrator tolerate a
// degraded generation service; repo and selector are required.
func NewEngine(evaluator *eval.Evaluator, narrator *story.Generator, selector *question.Selector, repo question.Repo, policy Policy) *Engine {
	return &Engine{
		evaluator: evaluator,
		narrator:  narrator,
		selector:  selector,
		repo:      repo,
		policy:    policy,
	}
}

// AdvanceResult is the payload of one turn. Status always mirrors
// State.Status; Question and Narrative are present only while the
// session keeps running.
type AdvanceResult struct {
	Status    Status              `json:"status"`
	State     State               `json:"updated_state"`
	Question  *question.Sanitized `json:"next_question,omitempty"`
	Narrative *story.Payload      `json:"narrative,omitempty"`

	// Evaluation reports the verdict for the submitted answer, absent on
	// the first turn.
	Evaluation *eval.Result `json:"evaluation,omitempty"`
}

// Advance runs one request cycle. An empty questionID means the first
// turn of a session: no evaluation, just the opening question. State
// mutation happens only after the evaluation fully resolves, so a slow
// or failing generation service never leaves a half-applied turn.
//
// Client errors: question.ErrNotFound when questionID does not exist,
// ErrSessionCompleted when the session already ended. Repository
// faults propagate as errors; generation faults never do.
func (e *Engine) Advance(ctx context.Context, state State, questionID, answer string) (*AdvanceResult, error) {
	state = state.Normalize()
	if state.Status == StatusCompleted {
		return nil, ErrSessionCompleted
	}
	wasBoss := state.Status == StatusBossBattle

	var res *eval.Result
	if questionID != "" {
		q, err := e.repo.GetByID(ctx, questionID)
		if err != nil {
			return nil, fmt.Errorf("advance: %w", err)
		}
		r := e.evaluator.Evaluate(ctx, answer, q)
		res = &r
	}

	next, earned := Apply(state, res)

	// Terminal checks come before selection: a depleted session never
	// sees another question.
	if next.Vitality <= 0 {
		return e.finish(next, res, OutcomeFailure), nil
	}
	if wasBoss && res != nil && res.IsCorrect {
		return e.finish(next, res, OutcomeSuccess), nil
	}

	// A failed boss answer with vitality left re-serves the boss tier;
	// otherwise the policy decides.
	boss := wasBoss || e.policy.BossEligible(next)
	tier := question.TierBoss
	cursor := next.DifficultyCursor
	if !boss {
		tier = e.policy.NextTier(next)
	} else {
		// The boss question is a milestone, not a step of the sorted
		// difficulty walk, so the cursor does not apply. A retried boss
		// serves the same question.
		cursor = 0
	}

	q, err := e.selector.Select(ctx, tier, next.Mastery, cursor)
	if err != nil {
		return nil, fmt.Errorf("advance: %w", err)
	}
	if q == nil {
		// Repository exhausted. Not an error: the player outlasted the
		// question bank.
		return e.finish(next, res, OutcomeSuccess), nil
	}

	next.Status = StatusInProgress
	if boss {
		next.Status = StatusBossBattle
		// The milestone fired; the served question consumes it.
		next.BossReady = false
	}

	narrative := e.narrate(ctx, next, *q, res, earned)
	sanitized := q.Sanitize()
	return &AdvanceResult{
		Status:     next.Status,
		State:      next,
		Question:   &sanitized,
		Narrative:  &narrative,
		Evaluation: res,
	}, nil
}

// Hint returns an advisory persona hint for a question. Read-only; the
// session state is never touched.
func (e *Engine) Hint(ctx context.Context, questionID, persona string) (string, error) {
	q, err := e.repo.GetByID(ctx, questionID)
	if err != nil {
		return "", fmt.Errorf("hint: %w", err)
	}
	return e.narrator.Hint(ctx, q, persona)
}

func (e *Engine) finish(next State, res *eval.Result, outcome Outcome) *AdvanceResult {
	next.Status = StatusCompleted
	next.Outcome = outcome
	next.BossReady = false
	if outcome == OutcomeFailure {
		next.grant(BadgeLostToMadness)
	} else {
		next.grant(BadgeUnseenTruth)
	}
	return &AdvanceResult{
		Status:     next.Status,
		State:      next,
		Evaluation: res,
	}
}

func (e *Engine) narrate(ctx context.Context, s State, q question.Question, res *eval.Result, earned []string) story.Payload {
	kind := story.KindStory
	switch {
	case s.Status == StatusBossBattle:
		kind = story.KindBoss
	case s.Mode == ModeImposter:
		kind = story.KindImposter
	}

	sctx := story.Context{
		Mastery:           s.Mastery,
		Vitality:          s.Vitality,
		Streak:            s.Streak,
		QuestionsAnswered: s.QuestionsAnswered,
	}
	if res != nil {
		correct := res.IsCorrect
		sctx.WasCorrect = &correct
	}
	if len(earned) > 0 {
		sctx.EarnedBadge = earned[0]
	}
	return e.narrator.Generate(ctx, kind, q, sctx)
}
