package handlers

import (
	"farmlink/internal/config"
	"farmlink/internal/intake"
	"farmlink/internal/metrics"
	"farmlink/internal/repos"
	"farmlink/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Dashboard *DashboardHandler
	Products  *ProductHandler
	Media     *MediaHandler

	Catalog *services.CatalogService
	Submit  *services.SubmissionService
	Images  *intake.Registry
	Drafts  *intake.Drafts
	Metrics *metrics.Metrics
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	images := intake.NewRegistry()
	drafts := intake.NewDrafts(images, cfg.DraftTTL)
	m := metrics.New(images.Len)

	prodRepo := repos.NewProductRepo(db)
	catalogSvc := services.NewCatalogService(prodRepo, images, m)
	submitSvc := services.NewSubmissionService(catalogSvc, m, cfg.CurrencySymbol, cfg.DefaultLocation)

	return &Deps{
		Dashboard: &DashboardHandler{Store: catalogSvc, Submit: submitSvc, Drafts: drafts, Metrics: m},
		Products:  &ProductHandler{Store: catalogSvc, Submit: submitSvc, Images: images, Metrics: m},
		Media:     &MediaHandler{Images: images},
		Catalog:   catalogSvc,
		Submit:    submitSvc,
		Images:    images,
		Drafts:    drafts,
		Metrics:   m,
	}
}
