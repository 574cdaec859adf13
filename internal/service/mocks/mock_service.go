package mocks

import (
	"context"
	"io"

	"noteapi/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) SubmitQuestion(ctx context.Context, in dto.QuestionInput) (dto.QuestionInput, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(dto.QuestionInput), args.Error(1)
}

func (m *MockNoteService) ListArchived(ctx context.Context, limit, offset int) (dto.Page[dto.ArchivedSummary], error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).(dto.Page[dto.ArchivedSummary]), args.Error(1)
}

func (m *MockNoteService) RecordAccess(ctx context.Context, noteID int64) (dto.ContentAccessRecord, error) {
	args := m.Called(ctx, noteID)
	return args.Get(0).(dto.ContentAccessRecord), args.Error(1)
}

func (m *MockNoteService) ListAccesses(ctx context.Context, limit, offset int) (dto.Page[dto.ContentAccessRecord], error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).(dto.Page[dto.ContentAccessRecord]), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (dto.ImageUploadResult, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	return args.Get(0).(dto.ImageUploadResult), args.Error(1)
}
