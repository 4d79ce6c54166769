package handlers

import (
	"farmlink/internal/catalog"
	"farmlink/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// parseFilter reads status, q and date from the query string. On failure it
// names the offending field.
func parseFilter(c *fiber.Ctx) (catalog.Filter, string, bool) {
	status, ok := validate.Status(c.Query("status"))
	if !ok {
		return catalog.Filter{Status: catalog.All}, "status", false
	}
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return catalog.Filter{Status: catalog.All}, "q", false
	}
	date, ok := validate.Date(c.Query("date"))
	if !ok {
		return catalog.Filter{Status: catalog.All}, "date", false
	}
	return catalog.Filter{Status: status, Search: q, Date: date}, "", true
}

var filterErrors = map[string]string{
	"status": "Unknown status filter",
	"q":      "Search terms are limited to 50 characters of plain text",
	"date":   "Enter a date as YYYY-MM-DD",
}
