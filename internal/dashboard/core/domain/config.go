package domain

import (
	"errors"
	"fmt"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
)

var ErrIncompleteColors = errors.New("color config has no entry for selector")

// ColorConfig maps every filter value to a display color.
type ColorConfig map[customers.Selector]string

func DefaultColors() ColorConfig {
	return ColorConfig{
		customers.SelectAll:    "#00CC96",
		customers.SelectFemale: "#000001",
		customers.SelectMale:   "#000002",
	}
}

func (c ColorConfig) Validate() error {
	for _, s := range customers.Selectors {
		if c[s] == "" {
			return fmt.Errorf("%w: %q", ErrIncompleteColors, string(s))
		}
	}
	return nil
}

func (c ColorConfig) For(s customers.Selector) string {
	return c[s]
}

func (c ColorConfig) ForGender(g customers.Gender) string {
	return c[customers.Selector(g)]
}

// HistogramPolicy is resolved once per field and shared by all series.
type HistogramPolicy struct {
	BinWidth  float64
	Precision int32 // decimals kept when flooring/ceiling the edges
	Mode      BarMode
}

type HistogramField string

const (
	FieldAverageRating HistogramField = "average_rating"
	FieldRecency       HistogramField = "days_since_last_purchase"
	FieldItems         HistogramField = "items_purchased"
	FieldMembership    HistogramField = "membership_type"
)

type HistogramPolicies map[HistogramField]HistogramPolicy

func DefaultHistogramPolicies() HistogramPolicies {
	return HistogramPolicies{
		FieldAverageRating: {BinWidth: 0.1, Precision: 1, Mode: BarModeStack},
		FieldRecency:       {BinWidth: 5, Precision: 0, Mode: BarModeStack},
		FieldItems:         {BinWidth: 1, Precision: 0, Mode: BarModeStack},
		FieldMembership:    {Mode: BarModeOverlay},
	}
}
