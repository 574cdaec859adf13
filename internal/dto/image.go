package dto

// ImageUploadResult is returned after an image has been stored.
type ImageUploadResult struct {
	// Public URL of the stored image
	ImageURL string `json:"imageUrl" format:"uri" doc:"Public URL of the stored image" example:"https://bucket.s3.region.amazonaws.com/uuid.jpg"`
}
