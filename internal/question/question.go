// Package question defines the question bank model and the selection
// logic that turns a difficulty decision into a concrete lookup.
package question

import (
	"context"
	"errors"
)

// ErrNotFound reports a lookup for a question id that does not exist.
// This is a caller/state-integrity bug, surfaced as a client error.
var ErrNotFound = errors.New("question not found")

// Tier is the categorical difficulty bucket, distinct from the
// finer-grained numeric difficulty rating.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierBoss   Tier = "boss"
)

// Rank orders tiers for bounded nudging. Boss sits above hard but is
// reachable only through the boss-eligibility path, never by nudging.
func (t Tier) Rank() int {
	switch t {
	case TierEasy:
		return 0
	case TierMedium:
		return 1
	case TierHard:
		return 2
	case TierBoss:
		return 3
	default:
		return 1
	}
}

// TierByRank is the inverse of Rank for the nudgeable range.
func TierByRank(r int) Tier {
	switch {
	case r <= 0:
		return TierEasy
	case r == 1:
		return TierMedium
	default:
		return TierHard
	}
}

// Question is one row of the question bank. Immutable once fetched.
type Question struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Mastery          string `json:"mastery"`
	DifficultyLevel  Tier   `json:"difficulty_level"`
	DifficultyRating int    `json:"difficulty_rating"`
	QuestionText     string `json:"question_text"`
	ExpectedOutcome  string `json:"expected_outcome"`
}

// Sanitized is the client-facing view of a question with the
// answer-revealing fields stripped.
type Sanitized struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Mastery          string `json:"mastery"`
	DifficultyLevel  Tier   `json:"difficulty_level"`
	DifficultyRating int    `json:"difficulty_rating"`
	QuestionText     string `json:"question_text"`
}

// Sanitize strips the expected outcome before a question is served.
func (q Question) Sanitize() Sanitized {
	return Sanitized{
		ID:               q.ID,
		Title:            q.Title,
		Mastery:          q.Mastery,
		DifficultyLevel:  q.DifficultyLevel,
		DifficultyRating: q.DifficultyRating,
		QuestionText:     q.QuestionText,
	}
}

// Filter narrows a question bank query. Zero values mean "no filter".
type Filter struct {
	Mastery   string
	Tier      Tier
	MinRating int
	MaxRating int
}

// Repo is the question bank lookup contract. Find must return rows in
// stable (difficulty_rating, id) ascending order so that offset-based
// pagination behaves deterministically.
type Repo interface {
	// Find returns up to limit questions matching the filter, skipping
	// offset rows. A limit of 0 means no limit.
	Find(ctx context.Context, f Filter, offset, limit int) ([]Question, error)

	// GetByID returns the question with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (Question, error)

	// Masteries returns the distinct mastery tags in the bank.
	Masteries(ctx context.Context) ([]string, error)
}
