package services

import (
	"database/sql"
	"errors"
	"time"

	"farmlink/internal/domain"
	"farmlink/internal/metrics"
	"farmlink/internal/repos"
)

var ErrNotFound = errors.New("product not found")

// Store is the product collection as handlers see it. Add and Delete are the
// only mutators.
type Store interface {
	Add(p domain.Product) (domain.Product, error)
	Delete(id string) error
	Get(id string) (domain.Product, error)
	Products() ([]domain.Product, error)
	MonthlyStats() (domain.MonthlyStats, error)
}

// Releaser frees image references owned by a removed product.
type Releaser interface {
	Release(refs ...string)
}

type CatalogService struct {
	Prods   *repos.ProductRepo
	Images  Releaser
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func NewCatalogService(prods *repos.ProductRepo, images Releaser, m *metrics.Metrics) *CatalogService {
	return &CatalogService{Prods: prods, Images: images, Metrics: m, Now: time.Now}
}

// Add puts p at the head of the catalog and returns it with its id.
func (s *CatalogService) Add(p domain.Product) (domain.Product, error) {
	if err := s.Prods.Insert(&p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Delete is a no-op for unknown ids.
func (s *CatalogService) Delete(id string) error {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	removed, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if removed {
		if s.Images != nil {
			s.Images.Release(p.Refs()...)
		}
		s.Metrics.Deleted()
	}
	return nil
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (s *CatalogService) Products() ([]domain.Product, error) {
	return s.Prods.List()
}

// MonthlyStats is recomputed on every call against the clock at call time.
func (s *CatalogService) MonthlyStats() (domain.MonthlyStats, error) {
	now := s.Now()
	rows, err := s.Prods.CountByStatusInMonth(now.Format("2006-01"))
	if err != nil {
		return domain.MonthlyStats{}, err
	}
	st := domain.MonthlyStats{Month: now.Month().String()}
	for _, r := range rows {
		st.Total += r.N
		switch r.Status {
		case domain.StatusApproved:
			st.Approved += r.N
		case domain.StatusPending:
			st.Pending += r.N
		case domain.StatusPaid:
			st.Paid += r.N
		}
	}
	return st, nil
}
