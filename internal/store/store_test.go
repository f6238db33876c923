package store

import (
	"context"
	"testing"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), DriverSQLite, "file:"+t.TempDir()+"/test.db?cache=shared&mode=rwc")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func seedQuestions(t *testing.T, repo *QuestionRepo) {
	t.Helper()
	qs := []question.Question{
		{ID: "q1", Title: "Lists", Mastery: "python", DifficultyLevel: question.TierMedium, DifficultyRating: 10, QuestionText: "t1", ExpectedOutcome: "e1"},
		{ID: "q2", Title: "Dicts", Mastery: "python", DifficultyLevel: question.TierMedium, DifficultyRating: 20, QuestionText: "t2", ExpectedOutcome: "e2"},
		{ID: "q3", Title: "Sort", Mastery: "python", DifficultyLevel: question.TierHard, DifficultyRating: 40, QuestionText: "t3", ExpectedOutcome: "e3"},
		{ID: "q4", Title: "Primes", Mastery: "mathematics", DifficultyLevel: question.TierHard, DifficultyRating: 30, QuestionText: "t4", ExpectedOutcome: "e4"},
	}
	for _, q := range qs {
		if err := repo.Upsert(context.Background(), q); err != nil {
			t.Fatalf("upsert %s: %v", q.ID, err)
		}
	}
}

func TestQuestionRepo_FindOrderAndOffset(t *testing.T) {
	st := openTestStore(t)
	repo := st.Questions()
	seedQuestions(t, repo)

	rows, err := repo.Find(context.Background(), question.Filter{Mastery: "python"}, 0, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 python questions, got %d", len(rows))
	}
	// Stable (difficulty_rating, id) ascending order.
	if rows[0].ID != "q1" || rows[1].ID != "q2" || rows[2].ID != "q3" {
		t.Fatalf("unexpected order: %s %s %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}

	rows, err = repo.Find(context.Background(), question.Filter{Mastery: "python", Tier: question.TierMedium}, 1, 1)
	if err != nil {
		t.Fatalf("find with offset: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "q2" {
		t.Fatalf("expected q2 at offset 1, got %+v", rows)
	}
}

func TestQuestionRepo_FindRatingRange(t *testing.T) {
	st := openTestStore(t)
	repo := st.Questions()
	seedQuestions(t, repo)

	rows, err := repo.Find(context.Background(), question.Filter{MinRating: 20, MaxRating: 40}, 0, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 questions in range, got %d", len(rows))
	}
}

func TestQuestionRepo_GetByID(t *testing.T) {
	st := openTestStore(t)
	repo := st.Questions()
	seedQuestions(t, repo)

	q, err := repo.GetByID(context.Background(), "q3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Title != "Sort" || q.DifficultyLevel != question.TierHard {
		t.Fatalf("unexpected question: %+v", q)
	}

	_, err = repo.GetByID(context.Background(), "nope")
	if err != question.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionRepo_Masteries(t *testing.T) {
	st := openTestStore(t)
	repo := st.Questions()
	seedQuestions(t, repo)

	ms, err := repo.Masteries(context.Background())
	if err != nil {
		t.Fatalf("masteries: %v", err)
	}
	if len(ms) != 2 || ms[0] != "mathematics" || ms[1] != "python" {
		t.Fatalf("unexpected masteries: %v", ms)
	}
}
