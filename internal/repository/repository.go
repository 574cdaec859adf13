package repository

import (
	"context"
	"time"

	"noteapi/internal/model"
)

// QuestionRepository persists questions. No business logic here.
type QuestionRepository interface {
	// Create inserts a question and returns it with the generated ID.
	Create(ctx context.Context, q *model.Question) (*model.Question, error)

	// Update rewrites the text of an existing question.
	// It returns sql.ErrNoRows when no question has the given ID.
	Update(ctx context.Context, q *model.Question) (*model.Question, error)
}

// NoteRepository reads notes.
type NoteRepository interface {
	// ListArchived returns archived notes, newest first, and the total archived count.
	ListArchived(ctx context.Context, pq PageQuery) (*PageResult[model.Note], error)
}

// AccessRepository stores and lists note access events.
type AccessRepository interface {
	// Record writes an access event for noteID, copying the note's current title.
	// It returns sql.ErrNoRows when the note does not exist.
	Record(ctx context.Context, noteID int64, at time.Time) (*model.AccessEvent, error)

	// List returns access events, most recent first, and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.AccessEvent], error)
}

// ImageRepository stores metadata of uploaded images.
type ImageRepository interface {
	// Create inserts a new image record and returns the stored row.
	Create(ctx context.Context, img *model.Image) (*model.Image, error)
}
