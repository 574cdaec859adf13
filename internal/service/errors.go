package service

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidID  = errors.New("id must be positive")
	ErrReaderNil  = errors.New("reader is nil")
	ErrNotImage   = errors.New("content type is not an image")
	ErrEmptyImage = errors.New("image is empty")
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePage applies the default and maximum page size and clamps negative offsets.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
