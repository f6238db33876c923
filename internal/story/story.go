// Package story wraps questions in generated narrative. It is purely
// presentational: nothing here reads or writes session state, and every
// provider failure degrades to a canned chapter so a turn always has a
// narrative.
package story

import (
	"encoding/json"
	"fmt"
)

// Kind selects the narrative template for a turn.
type Kind string

const (
	// KindStory is the standard containment-thriller chapter.
	KindStory Kind = "story"

	// KindImposter has a deceptive AI present subtly flawed help.
	KindImposter Kind = "imposter"

	// KindBoss is the hostile final-boss turn.
	KindBoss Kind = "boss"
)

// Payload is the narrative for one turn.
type Payload struct {
	Text         string `json:"text"`
	CallToAction string `json:"call_to_action"`

	// Degraded marks canned fallback narrative produced without the
	// generation service.
	Degraded bool `json:"degraded,omitempty"`
}

// Context carries the state scalars the templates interpolate. The
// generator receives values, never the session state itself.
type Context struct {
	Mastery           string
	Vitality          float64
	Streak            int
	QuestionsAnswered int

	// WasCorrect reports the previous answer's verdict; nil on the
	// first turn of a session.
	WasCorrect *bool

	// EarnedBadge names a badge granted this turn, if any.
	EarnedBadge string
}

// narrativeSchema is the structured-output contract for chapters.
var narrativeSchema = &struct {
	Name       string
	Definition map[string]any
}{
	Name: "narrative-chapter",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"narrative":      map[string]any{"type": "string"},
			"call_to_action": map[string]any{"type": "string"},
		},
		"required": []any{"narrative", "call_to_action"},
	},
}

// chapterPayload is the raw JSON shape of a generated chapter.
type chapterPayload struct {
	Narrative    string `json:"narrative"`
	CallToAction string `json:"call_to_action"`
}

func decodeChapter(raw json.RawMessage) (Payload, error) {
	var p chapterPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("decode chapter: %w", err)
	}
	if p.Narrative == "" {
		return Payload{}, fmt.Errorf("empty narrative in chapter")
	}
	return Payload{Text: p.Narrative, CallToAction: p.CallToAction}, nil
}

// persona returns the narrator character for the current vitality band.
// Above 60 the calm director leads; below, the frantic researcher.
func persona(vitality float64) string {
	if vitality > 60 {
		return "Director Thorne"
	}
	return "Dr. Aris Thorne"
}
