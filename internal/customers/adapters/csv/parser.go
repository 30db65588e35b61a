package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"

	"github.com/shopspring/decimal"
)

// Column names of the published dataset.
const (
	ColCustomerID      = "Customer ID"
	ColGender          = "Gender"
	ColAge             = "Age"
	ColCity            = "City"
	ColMembershipType  = "Membership Type"
	ColTotalSpend      = "Total Spend"
	ColItemsPurchased  = "Items Purchased"
	ColAverageRating   = "Average Rating"
	ColDiscountApplied = "Discount Applied"
	ColDaysSinceLast   = "Days Since Last Purchase"
	ColSatisfaction    = "Satisfaction Level"
)

var requiredColumns = []string{
	ColCustomerID,
	ColGender,
	ColAge,
	ColMembershipType,
	ColTotalSpend,
	ColItemsPurchased,
	ColAverageRating,
	ColDaysSinceLast,
	ColSatisfaction,
}

var errNotFinite = errors.New("not a finite number")

// RowError describes the first cell that failed to parse.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d, column %q, value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ports.ErrMalformedRow, e.Err}
}

// Parse reads a header row followed by customer rows. A cell whose content
// does not match the column type rejects the whole input.
func Parse(r io.Reader) (*domain.Table, error) {
	cr := stdcsv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: input has no header row", ports.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ports.ErrMalformedRow, err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimPrefix(col, "\ufeff")
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ports.ErrMissingColumn, col)
		}
	}

	var rows []domain.CustomerRecord
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ports.ErrMalformedRow, line, err)
		}

		row, err := parseRecord(rec, idx, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return domain.NewTable(rows), nil
}

func parseRecord(rec []string, idx map[string]int, line int) (domain.CustomerRecord, error) {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	var firstErr error
	atoi := func(col string) int {
		v := cell(col)
		n, err := strconv.Atoi(v)
		if err != nil && firstErr == nil {
			firstErr = &RowError{Line: line, Column: col, Value: v, Err: err}
		}
		return n
	}

	r := domain.CustomerRecord{
		CustomerID:            cell(ColCustomerID),
		Gender:                domain.Gender(cell(ColGender)),
		Age:                   atoi(ColAge),
		City:                  cell(ColCity),
		MembershipType:        cell(ColMembershipType),
		ItemsPurchased:        atoi(ColItemsPurchased),
		DaysSinceLastPurchase: atoi(ColDaysSinceLast),
		SatisfactionLevel:     cell(ColSatisfaction),
	}
	if firstErr != nil {
		return r, firstErr
	}

	spend := cell(ColTotalSpend)
	d, err := decimal.NewFromString(spend)
	if err != nil {
		return r, &RowError{Line: line, Column: ColTotalSpend, Value: spend, Err: err}
	}
	r.TotalSpend = d

	rating := cell(ColAverageRating)
	f, err := strconv.ParseFloat(rating, 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errNotFinite
	}
	if err != nil {
		return r, &RowError{Line: line, Column: ColAverageRating, Value: rating, Err: err}
	}
	r.AverageRating = f

	if _, ok := idx[ColDiscountApplied]; ok {
		raw := cell(ColDiscountApplied)
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return r, &RowError{Line: line, Column: ColDiscountApplied, Value: raw, Err: err}
		}
		r.DiscountApplied = &b
	}

	return r, nil
}
