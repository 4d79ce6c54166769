package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"farmlink/internal/domain"
	"farmlink/internal/metrics"
	"farmlink/internal/validate"
)

const placeholderImage = "/static/placeholder.svg"

// Outcome is the single result of a submission: either Product is set, or
// Invalid lists the failed rules, or Err carries a store failure.
type Outcome struct {
	Product domain.Product
	Invalid validate.Errors
	Err     error
}

func (o Outcome) OK() bool { return o.Err == nil && len(o.Invalid) == 0 }

type SubmissionService struct {
	Store           Store
	Metrics         *metrics.Metrics
	Currency        string
	DefaultLocation string
	Now             func() time.Time
}

func NewSubmissionService(store Store, m *metrics.Metrics, currency, defaultLocation string) *SubmissionService {
	return &SubmissionService{Store: store, Metrics: m, Currency: currency, DefaultLocation: defaultLocation, Now: time.Now}
}

// Submit validates d and, if it passes, adds the normalized product to the
// store. The returned channel yields exactly one Outcome and is then closed.
func (s *SubmissionService) Submit(d domain.Draft) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		out <- s.submit(d)
	}()
	return out
}

func (s *SubmissionService) submit(d domain.Draft) Outcome {
	if errs := validate.Draft(d); errs != nil {
		for _, fe := range errs {
			s.Metrics.Rejected(fe.Field, string(fe.Code))
		}
		return Outcome{Invalid: errs}
	}
	p, err := s.Store.Add(s.Normalize(d))
	if err != nil {
		return Outcome{Err: err}
	}
	s.Metrics.Submitted()
	return Outcome{Product: p}
}

// Normalize turns a valid draft into a Pending product without an id.
func (s *SubmissionService) Normalize(d domain.Draft) domain.Product {
	cat, _ := domain.ParseCategory(d.Category)
	unit := strings.TrimSpace(d.Unit)
	if unit == "" {
		unit = domain.DefaultUnit
	}
	currency := s.Currency
	if currency == "" {
		currency = "$"
	}
	location := strings.TrimSpace(d.Location)
	if location == "" {
		location = s.DefaultLocation
	}

	image := placeholderImage
	gallery := []string{}
	for i, img := range d.Images {
		if i == 0 {
			image = img.Ref
			continue
		}
		gallery = append(gallery, img.Ref)
	}
	gj, _ := json.Marshal(gallery)

	return domain.Product{
		Name:          strings.TrimSpace(d.Name),
		Category:      cat.Display(),
		Quantity:      strconv.FormatFloat(d.Quantity, 'f', -1, 64) + " " + unit,
		SubmittedDate: s.Now().Format(time.DateOnly),
		Price:         currency + d.Price.StringFixed(2),
		PriceValue:    d.Price,
		Currency:      currency,
		Status:        domain.StatusPending,
		Image:         image,
		ImagesJSON:    string(gj),
		Location:      location,
	}
}
