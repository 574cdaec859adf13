package model

import "time"

// Image represents an uploaded image file in object storage.
// It carries no database-specific dependencies and is shared by the service and storage layers.
type Image struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
