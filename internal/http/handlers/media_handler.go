package handlers

import (
	"farmlink/internal/intake"

	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	Images *intake.Registry
}

// GET /media/blob/:id serves a live object reference. Released refs are gone.
func (h *MediaHandler) Blob(c *fiber.Ctx) error {
	b, ok := h.Images.Open(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, b.ContentType)
	c.Set(fiber.HeaderCacheControl, "private, no-store")
	return c.Send(b.Data)
}
