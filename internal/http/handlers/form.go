package handlers

import (
	"math"
	"strconv"
	"strings"

	"farmlink/internal/domain"
	"farmlink/internal/intake"
	"farmlink/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// draftFromForm reads the submission fields. Unparseable numbers become zero
// and are then rejected by validation.
func draftFromForm(c *fiber.Ctx, images []domain.Image) domain.Draft {
	qty, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("quantity")), 64)
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) {
		qty = 0
	}
	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("wishedPrice")))
	if err != nil {
		price = decimal.Zero
	}
	unit := strings.TrimSpace(c.FormValue("unit"))
	if !domain.ValidUnit(unit) {
		unit = domain.DefaultUnit
	}
	return domain.Draft{
		Name:     c.FormValue("productName"),
		Category: strings.TrimSpace(c.FormValue("category")),
		Quantity: qty,
		Unit:     unit,
		Price:    price,
		Images:   images,
		Location: validate.Location(c.FormValue("location")),
	}
}

// formUploads returns the files posted under "images", if the body is multipart.
func formUploads(c *fiber.Ctx) []intake.Upload {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return intake.FromMultipart(form.File["images"])
}

// formEcho keeps what the farmer typed so a rejected form comes back filled in.
func formEcho(c *fiber.Ctx) fiber.Map {
	return fiber.Map{
		"productName": c.FormValue("productName"),
		"category":    c.FormValue("category"),
		"quantity":    c.FormValue("quantity"),
		"unit":        c.FormValue("unit", domain.DefaultUnit),
		"wishedPrice": c.FormValue("wishedPrice"),
		"location":    c.FormValue("location"),
	}
}

func emptyForm() fiber.Map {
	return fiber.Map{"productName": "", "category": "", "quantity": "", "unit": domain.DefaultUnit, "wishedPrice": "", "location": ""}
}

type categoryOption struct {
	Value string
	Label string
}

func categoryOptions() []categoryOption {
	out := make([]categoryOption, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		out = append(out, categoryOption{Value: string(cat), Label: cat.Display()})
	}
	return out
}

func productJSON(p domain.Product) fiber.Map {
	return fiber.Map{
		"id":            p.ID,
		"name":          p.Name,
		"category":      p.Category,
		"quantity":      p.Quantity,
		"submittedDate": p.SubmittedDate,
		"price":         p.Price,
		"priceValue":    p.PriceValue.StringFixed(2),
		"currency":      p.Currency,
		"status":        p.Status,
		"statusColor":   p.StatusColor(),
		"image":         p.Image,
		"gallery":       p.Gallery(),
		"location":      p.Location,
	}
}

func productsJSON(ps []domain.Product) []fiber.Map {
	out := make([]fiber.Map, 0, len(ps))
	for _, p := range ps {
		out = append(out, productJSON(p))
	}
	return out
}
