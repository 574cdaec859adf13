package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"noteapi/internal/dto"
	"noteapi/internal/model"
	"noteapi/internal/repository"
)

const teaserRunes = 100

// NoteService assembles the note-related read models and accepts questions.
type NoteService interface {
	// SubmitQuestion stores a question. A nil ID creates a new question; a set ID
	// updates it and fails with ErrNotFound when no such question exists.
	SubmitQuestion(ctx context.Context, in dto.QuestionInput) (dto.QuestionInput, error)

	// ListArchived returns archived notes as summaries using limit/offset.
	ListArchived(ctx context.Context, limit, offset int) (dto.Page[dto.ArchivedSummary], error)

	// RecordAccess logs that noteID was opened now and returns the stored record.
	RecordAccess(ctx context.Context, noteID int64) (dto.ContentAccessRecord, error)

	// ListAccesses returns access records, most recent first.
	ListAccesses(ctx context.Context, limit, offset int) (dto.Page[dto.ContentAccessRecord], error)
}

type noteService struct {
	questions repository.QuestionRepository
	notes     repository.NoteRepository
	accesses  repository.AccessRepository
	now       func() time.Time
}

// NewNoteService constructs a new NoteService.
func NewNoteService(questions repository.QuestionRepository, notes repository.NoteRepository, accesses repository.AccessRepository) NoteService {
	return &noteService{
		questions: questions,
		notes:     notes,
		accesses:  accesses,
		now:       time.Now,
	}
}

func (s *noteService) SubmitQuestion(ctx context.Context, in dto.QuestionInput) (dto.QuestionInput, error) {
	now := s.now().UTC()
	q := &model.Question{Text: in.QuestionText, CreatedAt: now, UpdatedAt: now}

	var (
		stored *model.Question
		err    error
	)
	if in.ID == nil {
		stored, err = s.questions.Create(ctx, q)
		if err != nil {
			return dto.QuestionInput{}, fmt.Errorf("create question: %w", err)
		}
	} else {
		if *in.ID <= 0 {
			return dto.QuestionInput{}, ErrInvalidID
		}
		q.ID = *in.ID
		stored, err = s.questions.Update(ctx, q)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return dto.QuestionInput{}, ErrNotFound
			}
			return dto.QuestionInput{}, fmt.Errorf("update question: %w", err)
		}
	}

	id := stored.ID
	return dto.QuestionInput{ID: &id, QuestionText: stored.Text}, nil
}

func (s *noteService) ListArchived(ctx context.Context, limit, offset int) (dto.Page[dto.ArchivedSummary], error) {
	limit, offset = normalizePage(limit, offset)

	res, err := s.notes.ListArchived(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return dto.Page[dto.ArchivedSummary]{}, err
	}

	items := make([]dto.ArchivedSummary, 0, len(res.Items))
	for _, n := range res.Items {
		items = append(items, toArchivedSummary(n))
	}
	return dto.NewPage(items, res.Total), nil
}

func (s *noteService) RecordAccess(ctx context.Context, noteID int64) (dto.ContentAccessRecord, error) {
	if noteID <= 0 {
		return dto.ContentAccessRecord{}, ErrInvalidID
	}

	ev, err := s.accesses.Record(ctx, noteID, s.now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.ContentAccessRecord{}, ErrNotFound
		}
		return dto.ContentAccessRecord{}, fmt.Errorf("record access: %w", err)
	}
	return toAccessRecord(*ev), nil
}

func (s *noteService) ListAccesses(ctx context.Context, limit, offset int) (dto.Page[dto.ContentAccessRecord], error) {
	limit, offset = normalizePage(limit, offset)

	res, err := s.accesses.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return dto.Page[dto.ContentAccessRecord]{}, err
	}

	items := make([]dto.ContentAccessRecord, 0, len(res.Items))
	for _, ev := range res.Items {
		items = append(items, toAccessRecord(ev))
	}
	return dto.NewPage(items, res.Total), nil
}

func toArchivedSummary(n model.Note) dto.ArchivedSummary {
	return dto.ArchivedSummary{
		ID:           n.ID,
		TagText:      n.TagText,
		Title:        n.Title,
		MainImageURL: n.MainImageURL,
		Teaser:       teaser(n.Content),
	}
}

func toAccessRecord(ev model.AccessEvent) dto.ContentAccessRecord {
	return dto.NewContentAccessRecord(ev.NoteID, ev.NoteTitle, ev.AccessedAt)
}

// teaser cuts content to its first teaserRunes runes, appending "..." when shortened.
func teaser(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= teaserRunes {
		return content
	}
	r := []rune(content)
	return strings.TrimSpace(string(r[:teaserRunes])) + "..."
}
