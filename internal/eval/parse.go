package eval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Default scores when the reply carries a usable correctness signal but
// no numeric score.
const (
	keywordCorrectScore   = 80
	keywordIncorrectScore = 40
)

var scorePattern = regexp.MustCompile(`"score"\s*:\s*(\d+(?:\.\d+)?)`)

// ParseVerdict recovers a Result from a model reply through staged
// fallbacks: strict JSON after fence stripping, then the outermost brace
// pair, then keyword heuristics with a regex-extracted score. It fails
// only when the text carries no correctness signal at all.
func ParseVerdict(raw string) (Result, error) {
	text := stripFences(strings.TrimSpace(raw))

	// Stage 1: the whole reply is the JSON object.
	if r, ok := decodeVerdict([]byte(text)); ok {
		return r, nil
	}

	// Stage 2: JSON embedded in surrounding prose.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		if r, ok := decodeVerdict([]byte(text[start : end+1])); ok {
			return r, nil
		}
	}

	// Stage 3: keyword scan. "incorrect" contains "correct", so check
	// the negative first.
	lower := strings.ToLower(text)
	var isCorrect bool
	switch {
	case strings.Contains(lower, "incorrect") || strings.Contains(lower, `"is_correct": false`) || strings.Contains(lower, "false"):
		isCorrect = false
	case strings.Contains(lower, "correct") || strings.Contains(lower, "true"):
		isCorrect = true
	default:
		return Result{}, fmt.Errorf("no verdict signal in reply")
	}

	score := float64(keywordIncorrectScore)
	if isCorrect {
		score = keywordCorrectScore
	}
	if m := scorePattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			score = clampScore(v)
		}
	}

	return Result{
		IsCorrect: isCorrect,
		Score:     score,
		Feedback:  "Solution evaluated from partial service reply",
	}, nil
}

func stripFences(text string) string {
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
