package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/eval"
)

func correct(score float64) *eval.Result {
	return &eval.Result{IsCorrect: true, Score: score, Feedback: "ok"}
}

func incorrect() *eval.Result {
	return &eval.Result{IsCorrect: false, Score: 25, Feedback: "no"}
}

func TestApply_FirstTurnIsBookkeepingOnly(t *testing.T) {
	s := NewState("python", ModeStory)
	next, earned := Apply(s, nil)

	if next.QuestionsAnswered != 0 || next.DifficultyCursor != 0 {
		t.Fatal("first turn must not advance counters")
	}
	if len(earned) != 0 {
		t.Fatal("first turn must not grant badges")
	}
}

func TestApply_CorrectAnswer(t *testing.T) {
	s := NewState("python", ModeStory)
	next, _ := Apply(s, correct(75))

	if next.Streak != 1 {
		t.Errorf("streak = %d, want 1", next.Streak)
	}
	if next.Score != basePoints {
		t.Errorf("score = %d, want %d", next.Score, basePoints)
	}
	if next.ExperiencePoints != 75 {
		t.Errorf("xp = %d, want 75", next.ExperiencePoints)
	}
	if next.Vitality != 100 {
		t.Errorf("vitality = %v, want clamped 100", next.Vitality)
	}
	if got := next.TeamTrust["senior_dev"]; got != 100 {
		t.Errorf("trust = %v, want clamped 100", got)
	}
	if next.QuestionsAnswered != 1 || next.DifficultyCursor != 1 {
		t.Error("counters must advance by one")
	}
	want := 100*emaKeep + 75*emaNew
	if next.RollingPerformance != want {
		t.Errorf("ema = %v, want %v", next.RollingPerformance, want)
	}
}

func TestApply_IncorrectAnswer(t *testing.T) {
	s := NewState("python", ModeStory)
	s.Streak = 7
	next, _ := Apply(s, incorrect())

	if next.Streak != 0 {
		t.Errorf("streak = %d, want 0 after a miss", next.Streak)
	}
	if next.Vitality != 100-vitalityLoss {
		t.Errorf("vitality = %v, want %v", next.Vitality, 100-vitalityLoss)
	}
	for p, v := range next.TeamTrust {
		if v != 100-trustLoss {
			t.Errorf("trust[%s] = %v, want %v", p, v, 100-trustLoss)
		}
	}
}

func TestApply_LevelUpResetsExperienceAndArmsBoss(t *testing.T) {
	s := NewState("python", ModeStory)
	s.ExperiencePoints = 150
	next, _ := Apply(s, correct(75))

	if next.Level != 2 {
		t.Fatalf("level = %d, want 2", next.Level)
	}
	if next.ExperiencePoints != 0 {
		t.Errorf("xp = %d, want reset to 0", next.ExperiencePoints)
	}
	if !next.BossReady {
		t.Error("level-up must arm the boss flag")
	}
}

func TestApply_ScoreUsesLevelBeforeLevelUp(t *testing.T) {
	s := NewState("python", ModeStory)
	s.ExperiencePoints = 150
	next, _ := Apply(s, correct(75))

	if next.Score != basePoints*1 {
		t.Errorf("score = %d, want points at the pre-level-up level", next.Score)
	}
}

func TestApply_NeverMutatesInput(t *testing.T) {
	s := NewState("python", ModeStory)
	s.Badges = []string{"code_warrior"}
	s.Streak = 2

	snapshot := s.Clone()
	Apply(s, correct(95))

	if !reflect.DeepEqual(s, snapshot) {
		t.Fatalf("input state mutated:\n before %+v\n after  %+v", snapshot, s)
	}
}

func TestApply_Boundedness(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewState("python", ModeStory)

	for i := 0; i < 500; i++ {
		var res *eval.Result
		if rng.Intn(2) == 0 {
			res = correct(float64(rng.Intn(101)))
		} else {
			res = incorrect()
		}
		s, _ = Apply(s, res)

		if s.Vitality < 0 || s.Vitality > 100 {
			t.Fatalf("turn %d: vitality %v out of [0,100]", i, s.Vitality)
		}
		for p, v := range s.TeamTrust {
			if v < 0 || v > 100 {
				t.Fatalf("turn %d: trust[%s] %v out of [0,100]", i, p, v)
			}
		}
		if s.RollingPerformance < 0 || s.RollingPerformance > 100 {
			t.Fatalf("turn %d: ema %v out of [0,100]", i, s.RollingPerformance)
		}
	}
}

func TestApply_MonotonicCounters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewState("python", ModeStory)

	prevAnswered, prevCursor := s.QuestionsAnswered, s.DifficultyCursor
	for i := 0; i < 200; i++ {
		var res *eval.Result
		if rng.Intn(2) == 0 {
			res = correct(75)
		} else {
			res = incorrect()
		}
		s, _ = Apply(s, res)

		if s.QuestionsAnswered < prevAnswered || s.DifficultyCursor < prevCursor {
			t.Fatalf("turn %d: counters went backwards", i)
		}
		prevAnswered, prevCursor = s.QuestionsAnswered, s.DifficultyCursor
	}
}

func TestApply_StreakCountsConsecutiveCorrect(t *testing.T) {
	s := NewState("python", ModeStory)
	for i := 1; i <= 4; i++ {
		s, _ = Apply(s, correct(75))
		if s.Streak != i {
			t.Fatalf("after %d correct: streak = %d", i, s.Streak)
		}
	}
	s, _ = Apply(s, incorrect())
	if s.Streak != 0 {
		t.Fatalf("streak = %d after a miss, want 0", s.Streak)
	}
}

func TestBadges_UniqueAcrossStreakResets(t *testing.T) {
	s := NewState("python", ModeStory)

	// Reach streak 3 twice with a reset in between.
	for i := 0; i < 3; i++ {
		s, _ = Apply(s, correct(75))
	}
	s, _ = Apply(s, incorrect())
	for i := 0; i < 3; i++ {
		s, _ = Apply(s, correct(75))
	}

	seen := map[string]int{}
	for _, b := range s.Badges {
		seen[b]++
	}
	if seen[BadgeCodeWarrior] != 1 {
		t.Fatalf("code_warrior granted %d times, want exactly once (badges: %v)", seen[BadgeCodeWarrior], s.Badges)
	}
	for b, n := range seen {
		if n > 1 {
			t.Errorf("badge %s duplicated", b)
		}
	}
}

func TestBadges_PerfectionistOnHighScore(t *testing.T) {
	s := NewState("python", ModeStory)
	next, earned := Apply(s, correct(97))

	if !next.HasBadge(BadgePerfectionist) {
		t.Fatal("score >= 95 must grant perfectionist")
	}
	found := false
	for _, id := range earned {
		if id == BadgePerfectionist {
			found = true
		}
	}
	if !found {
		t.Error("perfectionist missing from the newly earned list")
	}
}
