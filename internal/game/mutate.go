package game

import (
	"math"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/eval"
)

// Mutation constants.
const (
	// levelXP scales the level-up threshold: level * levelXP experience
	// points advance the level and reset experience to 0.
	levelXP = 200

	// basePoints per correct answer, scaled by the current level.
	basePoints = 10

	vitalityGain = 5
	vitalityLoss = 20

	trustGain = 2
	trustLoss = 5

	// Rolling performance EMA weights.
	emaKeep = 0.8
	emaNew  = 0.2
)

// Apply produces the successor state for one evaluated answer. The
// input is never mutated; callers may hold the previous state across
// turns safely. A nil evaluation is the first turn of a session and
// performs initialization bookkeeping only. Returns the new state and
// the badge ids newly earned this turn.
func Apply(s State, res *eval.Result) (State, []string) {
	next := s.Normalize()
	if res == nil {
		return next, nil
	}

	if res.IsCorrect {
		next.Streak++
		next.Score += basePoints * next.Level

		next.ExperiencePoints += int(math.Round(res.Score))
		if next.ExperiencePoints >= next.Level*levelXP {
			next.Level++
			next.ExperiencePoints = 0
			next.BossReady = true
		}

		next.Vitality = clamp(next.Vitality + vitalityGain)
		for p, v := range next.TeamTrust {
			next.TeamTrust[p] = clamp(v + trustGain)
		}
	} else {
		next.Streak = 0
		next.Vitality = clamp(next.Vitality - vitalityLoss)
		for p, v := range next.TeamTrust {
			next.TeamTrust[p] = clamp(v - trustLoss)
		}
	}

	next.RollingPerformance = clamp(next.RollingPerformance*emaKeep + res.Score*emaNew)

	next.QuestionsAnswered++
	next.DifficultyCursor++

	earned := earnedBadges(&next, *res)
	return next, earned
}
