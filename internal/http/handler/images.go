package handler

import (
	"errors"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"noteapi/internal/service"
)

// UploadImage stores an uploaded image (multipart/form-data, field name: image).
// The content type is sniffed from the file bytes; the client header is ignored.
// @Summary Upload an image
// @Tags images
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} dto.ImageUploadResult
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /images [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "IMAGE_REQUIRED", "image is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		mt, err := mimetype.DetectReader(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		res, err := svc.Upload(c.UserContext(), f, fh.Filename, mt.String(), fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotImage):
				return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "file is not an image")
			case errors.Is(err, service.ErrEmptyImage):
				return writeError(c, fiber.StatusBadRequest, "EMPTY_IMAGE", "image is empty")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return writeJSON(c, fiber.StatusCreated, res)
	}
}
