package postgres

import (
	"context"
	"database/sql"

	"noteapi/internal/model"
	"noteapi/internal/repository"
)

// NotePostgres is a PostgreSQL implementation of repository.NoteRepository.
type NotePostgres struct {
	db *sql.DB
}

// NewNotePostgres creates a new NotePostgres repository.
func NewNotePostgres(db *sql.DB) *NotePostgres {
	return &NotePostgres{db: db}
}

var _ repository.NoteRepository = (*NotePostgres)(nil)

// ListArchived returns archived notes using LIMIT/OFFSET pagination and a total count.
func (r *NotePostgres) ListArchived(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Note], error) {
	const qCount = `SELECT COUNT(*) FROM notes WHERE archived`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, title, tag_text, main_image_url, content, archived, created_at
		FROM notes
		WHERE archived
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.TagText,
			&n.MainImageURL,
			&n.Content,
			&n.Archived,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Note]{
		Items: items,
		Total: total,
	}, nil
}
