package handler

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"noteapi/internal/service"
)

const healthTimeout = 2 * time.Second

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate between HTTP and the services; shaping rules live in dto.
func RegisterRoutes(app *fiber.App, db *sql.DB, noteSvc service.NoteService, imageSvc service.ImageService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	app.Post("/questions", SubmitQuestion(noteSvc))

	notes := app.Group("/notes")
	notes.Get("/archived", ListArchived(noteSvc))
	notes.Get("/access-records", ListAccessRecords(noteSvc))
	notes.Post("/:id/access", RecordAccess(noteSvc))

	app.Post("/images", UploadImage(imageSvc))

	app.Get("/schemas", ListSchemas())
	app.Get("/schemas/:name", GetSchema())
}

// HealthCheck checks DB connectivity only.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// Liveness reports that the process is up.
// @Summary Liveness check
// @Tags health
// @Success 200
// @Router /healthz [get]
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

type queryError struct {
	code    string
	message string
}

// parsePage reads the limit and offset query parameters. Range clamping is left
// to the services.
func parsePage(c *fiber.Ctx) (int, int, *queryError) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, &queryError{code: "INVALID_LIMIT", message: "invalid limit"}
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, &queryError{code: "INVALID_OFFSET", message: "invalid offset"}
	}
	return limit, offset, nil
}
