package handlers

import (
	"farmlink/internal/intake"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Register mounts every page and API route. Middleware is left to the caller.
func Register(app *fiber.App, d *Deps) {
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/farmer") })

	// Dashboard
	app.Get("/farmer", d.Dashboard.Show)
	app.Post("/farmer/draft/images", d.Dashboard.AddImages)
	app.Post("/farmer/draft/images/:idx/delete", d.Dashboard.RemoveImage)
	app.Post("/farmer/draft/discard", d.Dashboard.Discard)
	app.Post("/farmer/products", d.Dashboard.SubmitProduct)
	app.Get("/farmer/products/:id", d.Dashboard.Detail)
	app.Post("/farmer/products/:id/delete", d.Dashboard.Delete)

	// Uploaded images
	app.Get(intake.RefPrefix+":id", d.Media.Blob)

	// API
	api := app.Group("/api/v1")
	api.Get("/products", d.Products.List)
	api.Post("/products", d.Products.Create)
	api.Get("/products/:id", d.Products.Get)
	api.Delete("/products/:id", d.Products.Delete)
	api.Get("/stats", d.Products.Stats)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(d.Metrics.Handler()))
}
