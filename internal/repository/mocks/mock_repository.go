package mocks

import (
	"context"
	"time"

	"noteapi/internal/model"
	"noteapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, q *model.Question) (*model.Question, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) ListArchived(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Note], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Note]), args.Error(1)
}

type MockAccessRepository struct {
	mock.Mock
}

func (m *MockAccessRepository) Record(ctx context.Context, noteID int64, at time.Time) (*model.AccessEvent, error) {
	args := m.Called(ctx, noteID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessEvent), args.Error(1)
}

func (m *MockAccessRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AccessEvent], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AccessEvent]), args.Error(1)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}
