package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"regexp"

	"customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"

	"github.com/shopspring/decimal"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CustomerRepository loads the snapshot from a SQL table whose columns follow
// the dataset header in snake_case.
type CustomerRepository struct {
	db    DB
	table string
}

func NewCustomerRepository(db DB, table string) (*CustomerRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &CustomerRepository{db: db, table: table}, nil
}

var _ ports.TableSourcePort = (*CustomerRepository)(nil)

func (r *CustomerRepository) query() string {
	return `
SELECT
    customer_id,
    gender,
    age,
    city,
    membership_type,
    total_spend,
    items_purchased,
    average_rating,
    discount_applied,
    days_since_last_purchase,
    satisfaction_level
FROM ` + r.table + `
ORDER BY customer_id`
}

func (r *CustomerRepository) LoadTable(ctx context.Context) (*domain.Table, error) {
	rows, err := r.db.QueryContext(ctx, r.query())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var out []domain.CustomerRecord
	n := 0
	for rows.Next() {
		n++
		var (
			rec          domain.CustomerRecord
			gender       string
			spend        decimal.Decimal
			city         sql.NullString
			discount     sql.NullBool
			satisfaction sql.NullString
		)
		if err := rows.Scan(
			&rec.CustomerID,
			&gender,
			&rec.Age,
			&city,
			&rec.MembershipType,
			&spend,
			&rec.ItemsPurchased,
			&rec.AverageRating,
			&discount,
			&rec.DaysSinceLastPurchase,
			&satisfaction,
		); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ports.ErrMalformedRow, n, err)
		}

		if math.IsNaN(rec.AverageRating) || math.IsInf(rec.AverageRating, 0) {
			return nil, fmt.Errorf("%w: row %d: average_rating is %v", ports.ErrMalformedRow, n, rec.AverageRating)
		}

		rec.Gender = domain.Gender(gender)
		rec.TotalSpend = spend
		rec.City = city.String
		rec.SatisfactionLevel = satisfaction.String
		if discount.Valid {
			b := discount.Bool
			rec.DiscountApplied = &b
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, err)
	}

	return domain.NewTable(out), nil
}
