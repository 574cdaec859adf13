package postgres

import (
	"context"
	"database/sql"

	"noteapi/internal/model"
	"noteapi/internal/repository"
)

// QuestionPostgres is a PostgreSQL implementation of repository.QuestionRepository.
type QuestionPostgres struct {
	db *sql.DB
}

// NewQuestionPostgres creates a new QuestionPostgres repository.
func NewQuestionPostgres(db *sql.DB) *QuestionPostgres {
	return &QuestionPostgres{db: db}
}

var _ repository.QuestionRepository = (*QuestionPostgres)(nil)

// Create inserts a question row and returns it with the database-assigned ID.
func (r *QuestionPostgres) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	const stmt = `
		INSERT INTO questions (question_text, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id, question_text, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, stmt, q.Text, q.CreatedAt, q.UpdatedAt)
	var out model.Question
	if err := row.Scan(&out.ID, &out.Text, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update rewrites the question text. sql.ErrNoRows is returned for an unknown ID.
func (r *QuestionPostgres) Update(ctx context.Context, q *model.Question) (*model.Question, error) {
	const stmt = `
		UPDATE questions
		SET question_text = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, question_text, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, stmt, q.ID, q.Text, q.UpdatedAt)
	var out model.Question
	if err := row.Scan(&out.ID, &out.Text, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
