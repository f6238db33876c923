package question

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Selector resolves a (tier, mastery, cursor) decision against the
// question bank, widening the filter in stages when no exact match
// exists. A nil result without error means the bank is exhausted for
// every fallback, which the caller treats as session completion.
type Selector struct {
	repo Repo

	// rng enables the fetch-all-then-pick-random strategy. When nil the
	// selector is deterministic (offset pagination). Randomized selection
	// trades reproducibility for variety; tests must inject a seeded rng.
	rng *rand.Rand
}

// NewSelector creates a deterministic selector.
func NewSelector(repo Repo) *Selector {
	return &Selector{repo: repo}
}

// NewRandomSelector creates a selector that picks uniformly among all
// rows matching the filter instead of paginating by cursor.
func NewRandomSelector(repo Repo, rng *rand.Rand) *Selector {
	return &Selector{repo: repo, rng: rng}
}

// Select finds the next question. Widening order: exact (mastery, tier),
// then mastery only, then tier only, then nil.
func (s *Selector) Select(ctx context.Context, tier Tier, mastery string, cursor int) (*Question, error) {
	filters := []Filter{
		{Mastery: mastery, Tier: tier},
		{Mastery: mastery},
		{Tier: tier},
	}

	for _, f := range filters {
		q, err := s.pick(ctx, f, cursor)
		if err != nil {
			return nil, fmt.Errorf("select question: %w", err)
		}
		if q != nil {
			return q, nil
		}
	}
	return nil, nil
}

func (s *Selector) pick(ctx context.Context, f Filter, cursor int) (*Question, error) {
	if s.rng == nil {
		rows, err := s.repo.Find(ctx, f, cursor, 1)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, nil
		}
		return &rows[0], nil
	}

	rows, err := s.repo.Find(ctx, f, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	q := rows[s.rng.IntN(len(rows))]
	return &q, nil
}
