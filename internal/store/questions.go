package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

// QuestionRepo is the SQL implementation of question.Repo.
type QuestionRepo struct {
	db *sql.DB
}

const questionCols = "id, title, mastery, difficulty_level, difficulty_rating, question_text, expected_outcome"

// Find returns questions matching the filter in stable
// (difficulty_rating, id) ascending order.
func (r *QuestionRepo) Find(ctx context.Context, f question.Filter, offset, limit int) ([]question.Question, error) {
	var where []string
	var args []any

	add := func(clause string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.Mastery != "" {
		add("mastery = $%d", f.Mastery)
	}
	if f.Tier != "" {
		add("difficulty_level = $%d", string(f.Tier))
	}
	if f.MinRating > 0 {
		add("difficulty_rating >= $%d", f.MinRating)
	}
	if f.MaxRating > 0 {
		add("difficulty_rating <= $%d", f.MaxRating)
	}

	q := "SELECT " + questionCols + " FROM questions"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY difficulty_rating ASC, id ASC"
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []question.Question
	for rows.Next() {
		var rec question.Question
		var tier string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Mastery, &tier, &rec.DifficultyRating, &rec.QuestionText, &rec.ExpectedOutcome); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		rec.DifficultyLevel = question.Tier(tier)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID returns one question or question.ErrNotFound.
func (r *QuestionRepo) GetByID(ctx context.Context, id string) (question.Question, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+questionCols+" FROM questions WHERE id = $1", id)

	var rec question.Question
	var tier string
	err := row.Scan(&rec.ID, &rec.Title, &rec.Mastery, &tier, &rec.DifficultyRating, &rec.QuestionText, &rec.ExpectedOutcome)
	if errors.Is(err, sql.ErrNoRows) {
		return question.Question{}, question.ErrNotFound
	}
	if err != nil {
		return question.Question{}, fmt.Errorf("get question %s: %w", id, err)
	}
	rec.DifficultyLevel = question.Tier(tier)
	return rec, nil
}

// Masteries returns the distinct mastery tags, sorted.
func (r *QuestionRepo) Masteries(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT mastery FROM questions ORDER BY mastery")
	if err != nil {
		return nil, fmt.Errorf("query masteries: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scan mastery: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Upsert inserts or replaces one question. Used by the seed command.
func (r *QuestionRepo) Upsert(ctx context.Context, q question.Question) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO questions (`+questionCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			title=EXCLUDED.title, mastery=EXCLUDED.mastery,
			difficulty_level=EXCLUDED.difficulty_level,
			difficulty_rating=EXCLUDED.difficulty_rating,
			question_text=EXCLUDED.question_text,
			expected_outcome=EXCLUDED.expected_outcome`,
		q.ID, q.Title, q.Mastery, string(q.DifficultyLevel), q.DifficultyRating, q.QuestionText, q.ExpectedOutcome)
	if err != nil {
		return fmt.Errorf("upsert question %s: %w", q.ID, err)
	}
	return nil
}
