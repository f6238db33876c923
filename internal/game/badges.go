package game

import "github.com/AdityaPandey-Pravya/Pravya-demo/internal/eval"

// Badge ids. Once granted a badge is never removed or duplicated.
const (
	BadgeCodeWarrior     = "code_warrior"
	BadgeDebuggingMaster = "debugging_master"
	BadgeDigitalSage     = "digital_sage"
	BadgePerfectionist   = "perfectionist"
	BadgeEliteDeveloper  = "elite_developer"

	// Terminal badges, granted exactly once on session end.
	BadgeLostToMadness = "lost_to_madness"
	BadgeUnseenTruth   = "the_unseen_truth"
)

const (
	perfectAnswerScore = 95
	elitePerformance   = 90
)

var streakBadges = []struct {
	streak int
	id     string
}{
	{3, BadgeCodeWarrior},
	{5, BadgeDebuggingMaster},
	{10, BadgeDigitalSage},
}

// grant inserts a badge id once, preserving insertion order. Reports
// whether the badge was newly added.
func (s *State) grant(id string) bool {
	if s.HasBadge(id) {
		return false
	}
	s.Badges = append(s.Badges, id)
	return true
}

// earnedBadges runs the per-answer unlock checks against an already
// mutated state and grants what applies. Streak checks fire on exact
// values, so a rebuilt streak re-triggers the check; set semantics on
// the badge list keep each id unique regardless. Returns the ids newly
// granted this turn.
func earnedBadges(s *State, res eval.Result) []string {
	if !res.IsCorrect {
		return nil
	}

	var earned []string
	for _, sb := range streakBadges {
		if s.Streak == sb.streak && s.grant(sb.id) {
			earned = append(earned, sb.id)
		}
	}
	if res.Score >= perfectAnswerScore && s.grant(BadgePerfectionist) {
		earned = append(earned, BadgePerfectionist)
	}
	if s.RollingPerformance >= elitePerformance && s.grant(BadgeEliteDeveloper) {
		earned = append(earned, BadgeEliteDeveloper)
	}
	return earned
}
