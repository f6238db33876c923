package game

import "github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"

// Progression constants. The ladder is monotonic in the answered
// counter; only the adaptive signal may pull a tier back down.
const (
	// ladderHardAt is the answered count at which the ladder moves from
	// medium to hard.
	ladderHardAt = 2

	// bossMilestone is the answered count whose next question is the
	// boss question (the fifth question of a session).
	bossMilestone = 4

	// Adaptive thresholds on the rolling performance average.
	adaptiveHigh = 85
	adaptiveLow  = 50
)

// Policy decides the next question's difficulty tier and boss
// eligibility from the session state. Mastery is a pass-through of the
// player's chosen subject and is never recomputed.
type Policy struct {
	// Adaptive widens or narrows the tier by the rolling performance
	// average instead of following the answered-count ladder alone.
	Adaptive bool
}

// BossEligible reports whether the next question must be a boss
// question: either a level-up armed the flag or the session hit the
// question-count milestone.
func (p Policy) BossEligible(s State) bool {
	return s.BossReady || s.QuestionsAnswered == bossMilestone
}

// NextTier maps the state to the tier of the next regular question.
// Boss eligibility is decided separately by BossEligible.
func (p Policy) NextTier(s State) question.Tier {
	tier := question.TierHard
	if s.QuestionsAnswered < ladderHardAt {
		tier = question.TierMedium
	}

	if p.Adaptive {
		rank := tier.Rank()
		switch {
		case s.RollingPerformance >= adaptiveHigh:
			rank++
		case s.RollingPerformance <= adaptiveLow && s.QuestionsAnswered > 0:
			rank--
		}
		tier = question.TierByRank(rank)
	}
	return tier
}
