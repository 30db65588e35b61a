package usecase

import (
	"errors"
	"fmt"

	"customer-behaviour-dashboard/internal/customers/core/domain"
)

var ErrUnknownSelector = errors.New("unknown gender selector")

// FilterByGender returns the rows matching sel, or the whole table for "All".
// The input table is never modified.
func FilterByGender(t *domain.Table, sel domain.Selector) (*domain.Table, error) {
	if !sel.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, string(sel))
	}
	g, narrow := sel.Gender()
	if !narrow {
		return t, nil
	}
	return t.Where(func(r domain.CustomerRecord) bool {
		return r.Gender == g
	}), nil
}
