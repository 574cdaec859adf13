package postgres

import (
	"context"
	"database/sql"
	"time"

	"noteapi/internal/model"
	"noteapi/internal/repository"
)

// AccessPostgres is a PostgreSQL implementation of repository.AccessRepository.
type AccessPostgres struct {
	db *sql.DB
}

// NewAccessPostgres creates a new AccessPostgres repository.
func NewAccessPostgres(db *sql.DB) *AccessPostgres {
	return &AccessPostgres{db: db}
}

var _ repository.AccessRepository = (*AccessPostgres)(nil)

// Record inserts an access event, copying the note title in the same statement.
// When the note does not exist no row is inserted and sql.ErrNoRows is returned.
func (r *AccessPostgres) Record(ctx context.Context, noteID int64, at time.Time) (*model.AccessEvent, error) {
	const stmt = `
		INSERT INTO note_access_logs (note_id, note_title, accessed_at)
		SELECT id, title, $2 FROM notes WHERE id = $1
		RETURNING id, note_id, note_title, accessed_at
	`
	row := r.db.QueryRowContext(ctx, stmt, noteID, at)
	var ev model.AccessEvent
	if err := row.Scan(&ev.ID, &ev.NoteID, &ev.NoteTitle, &ev.AccessedAt); err != nil {
		return nil, err
	}
	return &ev, nil
}

// List returns access events, most recent first.
func (r *AccessPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AccessEvent], error) {
	const qCount = `SELECT COUNT(*) FROM note_access_logs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, note_id, note_title, accessed_at
		FROM note_access_logs
		ORDER BY accessed_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AccessEvent, 0)
	for rows.Next() {
		var ev model.AccessEvent
		if err := rows.Scan(&ev.ID, &ev.NoteID, &ev.NoteTitle, &ev.AccessedAt); err != nil {
			return nil, err
		}
		items = append(items, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AccessEvent]{
		Items: items,
		Total: total,
	}, nil
}
