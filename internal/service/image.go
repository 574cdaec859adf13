package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"noteapi/internal/dto"
	"noteapi/internal/model"
	"noteapi/internal/repository"
	"noteapi/internal/storage"
)

// ImageService stores uploaded images and reports where they can be fetched.
type ImageService interface {
	// Upload streams the image to object storage, saves its metadata and rolls the
	// object back if the metadata cannot be saved.
	// originalFilename only contributes its extension; the stored name is a UUID.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (dto.ImageUploadResult, error)
}

type imageService struct {
	store storage.Storage
	repo  repository.ImageRepository
}

// NewImageService constructs a new ImageService.
func NewImageService(store storage.Storage, repo repository.ImageRepository) ImageService {
	return &imageService{store: store, repo: repo}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (dto.ImageUploadResult, error) {
	if r == nil {
		return dto.ImageUploadResult{}, ErrReaderNil
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return dto.ImageUploadResult{}, ErrNotImage
	}
	if size == 0 {
		return dto.ImageUploadResult{}, ErrEmptyImage
	}

	id := uuid.New().String()
	genName := id + strings.ToLower(path.Ext(originalFilename))
	key := path.Join("images", genName)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return dto.ImageUploadResult{}, fmt.Errorf("upload to storage: %w", err)
	}

	img := &model.Image{
		ID:          id,
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, img)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, objInfo.Key); delErr != nil {
			return dto.ImageUploadResult{}, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return dto.ImageUploadResult{}, fmt.Errorf("db save failed: %w", err)
	}

	return dto.ImageUploadResult{ImageURL: s.store.URL(stored.StoragePath)}, nil
}
