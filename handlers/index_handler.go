package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

const indexFile = "index.html"

// Index serves the homepage: index.html next to the binary when present,
// otherwise a short notice that the API is up.
func Index(c *fiber.Ctx) error {
	if _, err := os.Stat(indexFile); err == nil {
		return c.SendFile(indexFile)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h3>API работает. Добавьте index.html рядом с бинарником для фронтенда.</h3>")
}
