// Package catalog derives what the dashboard shows from the product list:
// the filtered rows, status badges, the empty-state message and the summary line.
// Everything here is pure; the store is never mutated.
package catalog

import (
	"fmt"
	"strings"

	"farmlink/internal/domain"
)

// All is the status selector that disables status filtering.
const All = "All"

type Filter struct {
	Status string // All or an exact status
	Search string // case-insensitive substring of name, category or location
	Date   string // exact submittedDate, YYYY-MM-DD
}

func (f Filter) status() string {
	if f.Status == "" {
		return All
	}
	return f.Status
}

func (f Filter) Match(p domain.Product) bool {
	if s := f.status(); s != All && string(p.Status) != s {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) {
			return false
		}
	}
	if f.Date != "" && p.SubmittedDate != f.Date {
		return false
	}
	return true
}

// Apply keeps the products matching f, preserving their order.
func Apply(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

type Badge struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Badges counts the unfiltered list, so they stay put while filters change.
func Badges(products []domain.Product) []Badge {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, p := range products {
		counts[p.Status]++
	}
	out := []Badge{{Status: All, Count: len(products)}}
	for _, st := range domain.Statuses {
		out = append(out, Badge{Status: string(st), Count: counts[st]})
	}
	return out
}

type EmptyKind string

const (
	EmptyNoMatches  EmptyKind = "no_matches"
	EmptyNoProducts EmptyKind = "no_products"
	EmptyNoStatus   EmptyKind = "no_status"
)

type EmptyState struct {
	Kind    EmptyKind `json:"kind"`
	Message string    `json:"message"`
}

// Empty picks the single message shown when the filtered list is empty.
func Empty(f Filter) EmptyState {
	switch {
	case f.Search != "":
		return EmptyState{EmptyNoMatches, fmt.Sprintf("No products found matching %q", f.Search)}
	case f.Date != "":
		return EmptyState{EmptyNoMatches, "No products found submitted on " + f.Date}
	case f.status() == All:
		return EmptyState{EmptyNoProducts, "No products found. Click 'Submit Product' to add your first product."}
	default:
		return EmptyState{EmptyNoStatus, fmt.Sprintf("No %s products found", strings.ToLower(f.status()))}
	}
}

func Summary(shown, total int, f Filter) string {
	s := fmt.Sprintf("Showing %d of %d products", shown, total)
	if st := f.status(); st != All {
		s += " (filtered by " + st + ")"
	}
	return s
}
