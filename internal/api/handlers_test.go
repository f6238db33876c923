package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/eval"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/game"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/story"
)

type fakeRepo struct {
	questions []question.Question
}

func (r *fakeRepo) Find(_ context.Context, f question.Filter, offset, limit int) ([]question.Question, error) {
	var out []question.Question
	for _, q := range r.questions {
		if f.Mastery != "" && q.Mastery != f.Mastery {
			continue
		}
		if f.Tier != "" && q.DifficultyLevel != f.Tier {
			continue
		}
		out = append(out, q)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (question.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return question.Question{}, question.ErrNotFound
}

func (r *fakeRepo) Masteries(_ context.Context) ([]string, error) {
	return []string{"mathematics", "python"}, nil
}

func testRouter() http.Handler {
	repo := &fakeRepo{questions: []question.Question{
		{ID: "q1", Title: "Safe access", Mastery: "python", DifficultyLevel: question.TierMedium,
			DifficultyRating: 10, QuestionText: "Extract the email field safely.", ExpectedOutcome: "dict.get"},
		{ID: "q2", Title: "Iterate", Mastery: "python", DifficultyLevel: question.TierMedium,
			DifficultyRating: 20, QuestionText: "Sum the values.", ExpectedOutcome: "loop"},
	}}
	engine := game.NewEngine(
		eval.New(nil, eval.DefaultConfig()),
		story.New(nil, story.DefaultConfig()),
		question.NewSelector(repo),
		repo,
		game.Policy{},
	)
	return New(engine, repo).Router([]string{"*"}, 30*time.Second)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, testRouter(), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMasteries(t *testing.T) {
	rec := doJSON(t, testRouter(), http.MethodGet, "/masteries", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var body struct {
		Masteries []string `json:"masteries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Masteries) != 2 {
		t.Errorf("masteries = %v", body.Masteries)
	}
}

func TestAdvance_NewSession(t *testing.T) {
	rec := doJSON(t, testRouter(), http.MethodPost, "/advance", map[string]string{"mastery": "python"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var result game.AdvanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Status != game.StatusInProgress {
		t.Errorf("status = %s", result.Status)
	}
	if result.Question == nil || result.Question.ID != "q1" {
		t.Fatalf("question = %+v", result.Question)
	}
	if strings.Contains(rec.Body.String(), "expected_outcome") {
		t.Error("served questions must not reveal the expected outcome")
	}
	if result.State.SessionID == "" {
		t.Error("new sessions must carry a session id")
	}
}

func TestAdvance_AnsweredTurn(t *testing.T) {
	h := testRouter()
	rec := doJSON(t, h, http.MethodPost, "/advance", map[string]string{"mastery": "python"})
	var first game.AdvanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, "/advance", map[string]any{
		"state":       first.State,
		"question_id": first.Question.ID,
		"answer":      `result = payload.get("email", "Not Provided")`,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var second game.AdvanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.Evaluation == nil || !second.Evaluation.IsCorrect {
		t.Fatalf("evaluation = %+v", second.Evaluation)
	}
	if second.State.Streak != 1 || second.State.QuestionsAnswered != 1 {
		t.Errorf("state = %+v", second.State)
	}
}

func TestAdvance_MissingStateAndMastery(t *testing.T) {
	rec := doJSON(t, testRouter(), http.MethodPost, "/advance", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), codeBadRequest) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestAdvance_UnknownQuestion(t *testing.T) {
	st := game.NewState("python", game.ModeStory)
	rec := doJSON(t, testRouter(), http.MethodPost, "/advance", map[string]any{
		"state": st, "question_id": "ghost", "answer": "x = 1",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), codeNotFound) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestAdvance_CompletedSession(t *testing.T) {
	st := game.NewState("python", game.ModeStory)
	st.Status = game.StatusCompleted
	st.Outcome = game.OutcomeSuccess

	rec := doJSON(t, testRouter(), http.MethodPost, "/advance", map[string]any{
		"state": st, "question_id": "q1", "answer": "x = 1",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), codeSessionCompleted) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestHint_UnknownQuestion(t *testing.T) {
	rec := doJSON(t, testRouter(), http.MethodPost, "/hint", map[string]string{"question_id": "ghost"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestHint_MissingQuestionID(t *testing.T) {
	rec := doJSON(t, testRouter(), http.MethodPost, "/hint", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
