package handlers

import (
	"errors"
	"strconv"

	"farmlink/internal/catalog"
	"farmlink/internal/domain"
	"farmlink/internal/intake"
	applog "farmlink/internal/log"
	"farmlink/internal/metrics"
	"farmlink/internal/services"
	"farmlink/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler renders the farmer dashboard and its submission form.
type DashboardHandler struct {
	Store   services.Store
	Submit  *services.SubmissionService
	Drafts  *intake.Drafts
	Metrics *metrics.Metrics
}

// page renders the dashboard. form and errs are only set when a submission was rejected.
func (h *DashboardHandler) page(c *fiber.Ctx, status int, f catalog.Filter, form fiber.Map, errs validate.Errors, msg string) error {
	ps, err := h.Store.Products()
	if err != nil {
		return err
	}
	stats, err := h.Store.MonthlyStats()
	if err != nil {
		return err
	}
	var images []domain.Image
	submitting := false
	if d, ok := h.Drafts.Peek(c.Cookies("sid")); ok {
		images = d.Images()
		submitting = d.Submitting()
	}
	if form == nil {
		form = emptyForm()
	}
	return render(c.Status(status), "farmer", fiber.Map{
		"View":       catalog.Build(ps, f),
		"Stats":      stats,
		"Categories": categoryOptions(),
		"Units":      domain.Units,
		"Images":     images,
		"MaxImages":  intake.MaxImages,
		"Submitting": submitting,
		"Form":       form,
		"Errors":     errs.Map(),
		"Err":        msg,
	})
}

// GET /farmer
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	f, field, ok := parseFilter(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return h.page(c, fiber.StatusBadRequest, f, nil, nil, filterErrors[field])
	}
	return h.page(c, fiber.StatusOK, f, nil, nil, "")
}

// POST /farmer/draft/images
func (h *DashboardHandler) AddImages(c *fiber.Ctx) error {
	d := h.Drafts.Get(ensureSID(c))
	accepted, dropped, err := d.Add(formUploads(c))
	if errors.Is(err, intake.ErrBusy) {
		return h.page(c, fiber.StatusConflict, catalog.Filter{}, nil, nil, "Submission in progress")
	}
	h.Metrics.Dropped(dropped)
	applog.Info(c, "draft.images.add", map[string]any{"accepted": accepted, "dropped": dropped})
	return c.Redirect("/farmer")
}

// POST /farmer/draft/images/:idx/delete
func (h *DashboardHandler) RemoveImage(c *fiber.Ctx) error {
	idx, err := strconv.Atoi(c.Params("idx"))
	if err != nil {
		return c.Redirect("/farmer")
	}
	d, ok := h.Drafts.Peek(c.Cookies("sid"))
	if !ok {
		return c.Redirect("/farmer")
	}
	if _, err := d.Remove(idx); errors.Is(err, intake.ErrBusy) {
		return h.page(c, fiber.StatusConflict, catalog.Filter{}, nil, nil, "Submission in progress")
	}
	return c.Redirect("/farmer")
}

// POST /farmer/draft/discard
func (h *DashboardHandler) Discard(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		if err := h.Drafts.Discard(sid); errors.Is(err, intake.ErrBusy) {
			return h.page(c, fiber.StatusConflict, catalog.Filter{}, nil, nil, "Submission in progress")
		}
	}
	return c.Redirect("/farmer")
}

// POST /farmer/products
func (h *DashboardHandler) SubmitProduct(c *fiber.Ctx) error {
	sid := ensureSID(c)
	d := h.Drafts.Get(sid)
	if _, dropped, err := d.Add(formUploads(c)); err == nil {
		h.Metrics.Dropped(dropped)
	}
	if !d.BeginSubmit() {
		return h.page(c, fiber.StatusConflict, catalog.Filter{}, formEcho(c), nil, "Submission in progress")
	}
	outcome := <-h.Submit.Submit(draftFromForm(c, d.Images()))
	d.EndSubmit()

	switch {
	case outcome.Err != nil:
		applog.Error(c, "product.submit.fail", outcome.Err, nil)
		return h.page(c, fiber.StatusInternalServerError, catalog.Filter{}, formEcho(c), nil, friendlyError)
	case len(outcome.Invalid) > 0:
		applog.Info(c, "product.submit.invalid", map[string]any{"fields": outcome.Invalid.Map()})
		return h.page(c, fiber.StatusUnprocessableEntity, catalog.Filter{}, formEcho(c), outcome.Invalid, "")
	}
	d.Handoff()
	h.Drafts.Forget(sid)
	applog.Audit(c, "product.submit", map[string]any{"product_id": outcome.Product.ID})
	return c.Redirect("/farmer")
}

// GET /farmer/products/:id
func (h *DashboardHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return render(c.Status(fiber.StatusNotFound), "notfound", fiber.Map{"Message": "This product is no longer listed"})
	}
	p, err := h.Store.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		return render(c.Status(fiber.StatusNotFound), "notfound", fiber.Map{"Message": "This product is no longer listed"})
	}
	if err != nil {
		return err
	}
	return render(c, "product", fiber.Map{"P": p})
}

// POST /farmer/products/:id/delete. Without confirm=yes nothing happens.
func (h *DashboardHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok || c.FormValue("confirm") != "yes" {
		return c.Redirect("/farmer")
	}
	if err := h.Store.Delete(id); err != nil {
		applog.Error(c, "product.delete.fail", err, map[string]any{"product_id": id})
		return err
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.Redirect("/farmer")
}
