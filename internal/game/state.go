// Package game implements the progression and evaluation state machine:
// per-answer state mutation, difficulty policy, and the advance
// orchestration that drives one player turn.
package game

import (
	"github.com/google/uuid"
)

// Mode tags the narrative flow a session runs under. The progression
// rules are shared; only the narrative framing differs.
type Mode string

const (
	ModeStory    Mode = "story"
	ModeImposter Mode = "imposter"
)

// Status is the session's lifecycle position. Exactly one status
// describes a session at any time.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusBossBattle Status = "boss_battle"
	StatusCompleted  Status = "completed"
)

// Outcome qualifies a completed session.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// TrustPersonas are the NPC personas whose trust scalars track every
// answer alongside vitality.
var TrustPersonas = []string{"senior_dev", "security_lead", "junior_dev"}

// State is the whole of one player session. It rides in each request
// and response; the server keeps nothing between turns.
type State struct {
	SessionID string `json:"session_id"`
	Mastery   string `json:"mastery"`
	Mode      Mode   `json:"mode"`

	Status  Status  `json:"status"`
	Outcome Outcome `json:"outcome,omitempty"`

	// DifficultyCursor is the offset into the difficulty-sorted question
	// sequence. Monotonically non-decreasing.
	DifficultyCursor int `json:"difficulty_cursor"`

	Score            int `json:"score"`
	ExperiencePoints int `json:"experience_points"`
	Level            int `json:"level"`
	Streak           int `json:"streak"`

	// Vitality is the bounded [0,100] session-health scalar. The session
	// ends in failure when it reaches 0.
	Vitality float64 `json:"vitality"`

	// Badges are unique achievement ids in insertion order.
	Badges []string `json:"badges"`

	// TeamTrust holds one bounded [0,100] scalar per persona, each
	// updated on every answer.
	TeamTrust map[string]float64 `json:"team_trust"`

	QuestionsAnswered int  `json:"session_questions_answered"`
	BossReady         bool `json:"boss_ready"`

	// RollingPerformance is the exponential moving average of answer
	// scores, the adaptive-difficulty signal.
	RollingPerformance float64 `json:"rolling_performance"`
}

// NewState creates a fresh session for the given mastery.
func NewState(mastery string, mode Mode) State {
	s := State{
		SessionID:          uuid.NewString(),
		Mastery:            mastery,
		Mode:               mode,
		Status:             StatusInProgress,
		Level:              1,
		Vitality:           100,
		RollingPerformance: 100,
		TeamTrust:          make(map[string]float64, len(TrustPersonas)),
	}
	for _, p := range TrustPersonas {
		s.TeamTrust[p] = 100
	}
	return s.Normalize()
}

// Normalize enforces the state invariants on a value that arrived off
// the wire: clamping, defaulting, and filling missing personas. It
// returns a corrected copy and never mutates the receiver.
func (s State) Normalize() State {
	n := s.Clone()

	if n.SessionID == "" {
		n.SessionID = uuid.NewString()
	}
	if n.Mode == "" {
		n.Mode = ModeStory
	}
	if n.Status == "" {
		n.Status = StatusInProgress
	}
	if n.Level < 1 {
		n.Level = 1
	}
	if n.Score < 0 {
		n.Score = 0
	}
	if n.ExperiencePoints < 0 {
		n.ExperiencePoints = 0
	}
	if n.Streak < 0 {
		n.Streak = 0
	}
	if n.DifficultyCursor < 0 {
		n.DifficultyCursor = 0
	}
	if n.QuestionsAnswered < 0 {
		n.QuestionsAnswered = 0
	}

	n.Vitality = clamp(n.Vitality)
	if n.RollingPerformance == 0 && n.QuestionsAnswered == 0 {
		n.RollingPerformance = 100
	}
	n.RollingPerformance = clamp(n.RollingPerformance)

	if n.TeamTrust == nil {
		n.TeamTrust = make(map[string]float64, len(TrustPersonas))
	}
	for _, p := range TrustPersonas {
		v, ok := n.TeamTrust[p]
		if !ok {
			v = 100
		}
		n.TeamTrust[p] = clamp(v)
	}
	return n
}

// Clone returns a deep copy. Mutating the copy never affects the
// original.
func (s State) Clone() State {
	n := s
	if s.Badges != nil {
		n.Badges = make([]string, len(s.Badges))
		copy(n.Badges, s.Badges)
	}
	if s.TeamTrust != nil {
		n.TeamTrust = make(map[string]float64, len(s.TeamTrust))
		for k, v := range s.TeamTrust {
			n.TeamTrust[k] = v
		}
	}
	return n
}

// HasBadge reports whether the badge id was already granted.
func (s State) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
