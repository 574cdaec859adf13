package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"noteapi/internal/dto"
	"noteapi/internal/service"
)

// SubmitQuestion creates a question when the body carries no id and updates it otherwise.
// @Summary Submit a question
// @Description A null id creates a new question (201); an existing id updates it (200).
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionInput true "Question"
// @Success 200 {object} dto.QuestionInput
// @Success 201 {object} dto.QuestionInput
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /questions [post]
func SubmitQuestion(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := dto.DecodeQuestionInput(c.Body())
		if err != nil {
			if errs, ok := dto.AsValidationErrors(err); ok {
				return writeValidationError(c, errs)
			}
			return err
		}

		out, err := svc.SubmitQuestion(c.UserContext(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "question not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		status := fiber.StatusOK
		if in.ID == nil {
			status = fiber.StatusCreated
		}
		return writeJSON(c, status, out)
	}
}

// ListArchived lists archived notes as summaries.
// @Summary List archived notes
// @Tags notes
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} dto.Page[dto.ArchivedSummary]
// @Failure 400 {object} errorPayload
// @Router /notes/archived [get]
func ListArchived(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, qerr := parsePage(c)
		if qerr != nil {
			return writeError(c, fiber.StatusBadRequest, qerr.code, qerr.message)
		}

		res, err := svc.ListArchived(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return writeJSON(c, fiber.StatusOK, res)
	}
}

// RecordAccess logs that a note was opened.
// @Summary Record a note access
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 201 {object} dto.ContentAccessRecord
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /notes/{id}/access [post]
func RecordAccess(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		}

		rec, err := svc.RecordAccess(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "note not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return writeJSON(c, fiber.StatusCreated, rec)
	}
}

// ListAccessRecords lists note accesses, most recent first.
// @Summary List note access records
// @Tags notes
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} dto.Page[dto.ContentAccessRecord]
// @Failure 400 {object} errorPayload
// @Router /notes/access-records [get]
func ListAccessRecords(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, qerr := parsePage(c)
		if qerr != nil {
			return writeError(c, fiber.StatusBadRequest, qerr.code, qerr.message)
		}

		res, err := svc.ListAccesses(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return writeJSON(c, fiber.StatusOK, res)
	}
}
