package validate

import (
	"strings"

	"farmlink/internal/domain"
)

type Code string

const (
	EmptyField           Code = "EmptyField"
	MissingSelection     Code = "MissingSelection"
	NonPositiveValue     Code = "NonPositiveValue"
	MissingRequiredAsset Code = "MissingRequiredAsset"
)

// Form field keys, shared with the submission form and the JSON API.
const (
	FieldName     = "productName"
	FieldCategory = "category"
	FieldQuantity = "quantity"
	FieldPrice    = "wishedPrice"
	FieldImages   = "images"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Errors is the full set of failed rules for one draft.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "invalid submission: " + strings.Join(msgs, "; ")
}

// Map keys messages by field for inline rendering.
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Draft evaluates every rule and returns all failures, or nil.
func Draft(d domain.Draft) Errors {
	var errs Errors
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, FieldError{FieldName, EmptyField, "Product name is required"})
	}
	if _, ok := domain.ParseCategory(d.Category); !ok {
		errs = append(errs, FieldError{FieldCategory, MissingSelection, "Category is required"})
	}
	if d.Quantity <= 0 {
		errs = append(errs, FieldError{FieldQuantity, NonPositiveValue, "Quantity must be greater than 0"})
	}
	if d.Price.Sign() <= 0 {
		errs = append(errs, FieldError{FieldPrice, NonPositiveValue, "Price must be greater than 0"})
	}
	if len(d.Images) == 0 {
		errs = append(errs, FieldError{FieldImages, MissingRequiredAsset, "At least one product image is required"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
