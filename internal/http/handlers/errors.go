package handlers

import (
	"errors"
	"strings"

	applog "farmlink/internal/log"

	"github.com/gofiber/fiber/v2"
)

const friendlyError = "Something went wrong. Please try again."

// ErrorHandler logs the real error and shows a message that leaks nothing.
// Client errors raised by fiber (404, 413, ...) keep their status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := friendlyError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
		msg = fe.Message
	}
	applog.Error(c, "server.error", err, map[string]any{"code": code})

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}
