package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"noteapi/docs"
)

// SwaggerUI serves the UI and doc.json; mount it on a route ending in "/*".
// docs.SwaggerInfo is read-only here. Its host stays empty, so the UI calls
// whichever host and scheme served the page.
func SwaggerUI() fiber.Handler {
	return swagger.New(swagger.Config{
		Title:        docs.SwaggerInfo.Title,
		DeepLinking:  true,
		DocExpansion: "list",
	})
}
