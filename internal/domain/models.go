package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusVerified Status = "Verified"
	StatusApproved Status = "Approved"
	StatusPaid     Status = "Paid"
)

// Statuses is the display order used for filter buttons and badges.
var Statuses = []Status{StatusPending, StatusVerified, StatusApproved, StatusPaid}

func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Color is the badge class for a status.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "bg-yellow-100 text-yellow-800"
	case StatusVerified:
		return "bg-blue-100 text-blue-800"
	case StatusApproved:
		return "bg-green-100 text-green-800"
	case StatusPaid:
		return "bg-purple-100 text-purple-800"
	}
	return "bg-gray-100 text-gray-800"
}

type Category string

var Categories = []Category{
	"VEGETABLES",
	"FRUITS",
	"GRAINS",
	"TUBERS",
	"LEGUMES",
	"HERBS_SPICES",
	"DAIRY_EGGS",
	"MEAT_POULTRY",
	"ORGANIC",
	"SEASONAL",
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Display turns HERBS_SPICES into "HERBS & SPICES". Only the first separator is replaced.
func (c Category) Display() string {
	return strings.Replace(string(c), "_", " & ", 1)
}

const DefaultUnit = "kg"

var Units = []string{"kg", "lb", "g", "oz", "bunch", "bag", "box", "crate", "dozen", "piece", "liter", "gallon"}

func ValidUnit(u string) bool {
	for _, x := range Units {
		if x == u {
			return true
		}
	}
	return false
}

type Product struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Category      string          `db:"category"` // display form
	Quantity      string          `db:"quantity"` // "25 kg"
	SubmittedDate string          `db:"submitted_date"`
	Price         string          `db:"price"` // "$45.50"
	PriceValue    decimal.Decimal `db:"price_value"`
	Currency      string          `db:"currency"`
	Status        Status          `db:"status"`
	Image         string          `db:"image"`
	ImagesJSON    string          `db:"images_json"`
	Location      string          `db:"location"`
}

func (p Product) StatusColor() string { return p.Status.Color() }

// Gallery returns the images after the primary one, in upload order.
func (p Product) Gallery() []string {
	var out []string
	if p.ImagesJSON == "" {
		return out
	}
	_ = json.Unmarshal([]byte(p.ImagesJSON), &out)
	return out
}

// Refs lists every image URI the product holds, primary first.
func (p Product) Refs() []string {
	refs := []string{}
	if p.Image != "" {
		refs = append(refs, p.Image)
	}
	return append(refs, p.Gallery()...)
}

type MonthlyStats struct {
	Month    string `json:"month"`
	Total    int    `json:"totalProductsThisMonth"`
	Approved int    `json:"approvedProductsThisMonth"`
	Pending  int    `json:"pendingProductsThisMonth"`
	Paid     int    `json:"paidProductsThisMonth"`
}

// Image is one accepted upload held by a draft. Ref is the object-reference URI.
type Image struct {
	Ref         string `json:"ref"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Draft is a candidate submission. It never reaches the store unless it validates.
type Draft struct {
	Name     string
	Category string
	Quantity float64
	Unit     string
	Price    decimal.Decimal
	Images   []Image
	Location string
}
