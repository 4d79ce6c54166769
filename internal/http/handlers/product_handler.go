package handlers

import (
	"errors"

	"farmlink/internal/catalog"
	"farmlink/internal/intake"
	applog "farmlink/internal/log"
	"farmlink/internal/metrics"
	"farmlink/internal/services"
	"farmlink/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves the JSON API under /api/v1.
type ProductHandler struct {
	Store   services.Store
	Submit  *services.SubmissionService
	Images  *intake.Registry
	Metrics *metrics.Metrics
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f, field, ok := parseFilter(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": filterErrors[field], "field": field})
	}
	ps, err := h.Store.Products()
	if err != nil {
		return err
	}
	v := catalog.Build(ps, f)
	return c.JSON(fiber.Map{
		"filter":   fiber.Map{"status": v.Filter.Status, "q": v.Filter.Search, "date": v.Filter.Date},
		"products": productsJSON(v.Products),
		"badges":   v.Badges,
		"total":    v.Total,
		"shown":    v.Shown,
		"summary":  v.Summary,
		"empty":    v.Empty,
	})
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	p, err := h.Store.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(productJSON(p))
}

// POST /api/v1/products (multipart). A one-shot draft: whatever it acquired is
// released again unless the product is accepted.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	draft := intake.NewDraft(h.Images)
	_, dropped, _ := draft.Add(formUploads(c))
	h.Metrics.Dropped(dropped)

	draft.BeginSubmit()
	outcome := <-h.Submit.Submit(draftFromForm(c, draft.Images()))
	draft.EndSubmit()

	if !outcome.OK() {
		_ = draft.Discard()
		if outcome.Err != nil {
			return outcome.Err
		}
		applog.Info(c, "product.submit.invalid", map[string]any{"fields": outcome.Invalid.Map()})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": outcome.Invalid})
	}
	draft.Handoff()
	applog.Audit(c, "product.submit", map[string]any{"product_id": outcome.Product.ID, "dropped": dropped})
	return c.Status(fiber.StatusCreated).JSON(productJSON(outcome.Product))
}

// DELETE /api/v1/products/:id?confirm=true
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !c.QueryBool("confirm") {
		return c.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{"error": "confirmation required"})
	}
	if _, ok := validate.ID(id); ok {
		if err := h.Store.Delete(id); err != nil {
			applog.Error(c, "product.delete.fail", err, map[string]any{"product_id": id})
			return err
		}
		applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/stats
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	st, err := h.Store.MonthlyStats()
	if err != nil {
		return err
	}
	return c.JSON(st)
}
