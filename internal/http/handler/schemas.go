package handler

import (
	"github.com/gofiber/fiber/v2"

	"noteapi/internal/dto"
)

// ListSchemas returns the documentation metadata of every wire shape.
// @Summary List wire schemas
// @Tags schemas
// @Produce json
// @Success 200 {object} dto.Page[dto.Schema]
// @Router /schemas [get]
func ListSchemas() fiber.Handler {
	return func(c *fiber.Ctx) error {
		all := dto.Schemas()
		return writeJSON(c, fiber.StatusOK, dto.NewPage(all, len(all)))
	}
}

// GetSchema returns the documentation metadata of one wire shape.
// @Summary Get a wire schema
// @Tags schemas
// @Produce json
// @Param name path string true "Shape name" example(QuestionInput)
// @Success 200 {object} dto.Schema
// @Failure 404 {object} errorPayload
// @Router /schemas/{name} [get]
func GetSchema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := dto.Lookup(c.Params("name"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "schema not found")
		}
		return writeJSON(c, fiber.StatusOK, s)
	}
}
