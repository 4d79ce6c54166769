package catalog

import "farmlink/internal/domain"

// View is one render of the product table.
type View struct {
	Filter   Filter
	Products []domain.Product
	Badges   []Badge
	Total    int
	Shown    int
	Empty    *EmptyState
	Summary  string
}

func Build(products []domain.Product, f Filter) View {
	if f.Status == "" {
		f.Status = All
	}
	rows := Apply(products, f)
	v := View{
		Filter:   f,
		Products: rows,
		Badges:   Badges(products),
		Total:    len(products),
		Shown:    len(rows),
		Summary:  Summary(len(rows), len(products), f),
	}
	if len(rows) == 0 {
		e := Empty(f)
		v.Empty = &e
	}
	return v
}
