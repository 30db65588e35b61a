package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders is the fixed order used for per-gender series.
var Genders = []Gender{GenderMale, GenderFemale}

type CustomerRecord struct {
	CustomerID            string
	Gender                Gender
	Age                   int
	City                  string
	MembershipType        string
	TotalSpend            decimal.Decimal
	ItemsPurchased        int
	AverageRating         float64
	DiscountApplied       *bool // nil when the column is absent
	DaysSinceLastPurchase int
	SatisfactionLevel     string // may be empty in the source data
}

// Table is an ordered, read-only set of customer rows.
// Callers never get access to the backing slice.
type Table struct {
	snapshotID string
	loadedAt   time.Time
	rows       []CustomerRecord
}

func NewTable(rows []CustomerRecord) *Table {
	cp := make([]CustomerRecord, len(rows))
	copy(cp, rows)
	return &Table{rows: cp}
}

// WithSnapshot returns a copy of the table stamped with a snapshot identity.
func (t *Table) WithSnapshot(id string, loadedAt time.Time) *Table {
	return &Table{snapshotID: id, loadedAt: loadedAt, rows: t.rows}
}

func (t *Table) SnapshotID() string  { return t.snapshotID }
func (t *Table) LoadedAt() time.Time { return t.loadedAt }

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the i-th record by value.
func (t *Table) Row(i int) CustomerRecord {
	return t.rows[i]
}

// Rows returns a copy of all rows in load order.
func (t *Table) Rows() []CustomerRecord {
	if t == nil {
		return nil
	}
	cp := make([]CustomerRecord, len(t.rows))
	copy(cp, t.rows)
	return cp
}

// Each calls fn for every row in order.
func (t *Table) Each(fn func(r CustomerRecord)) {
	if t == nil {
		return
	}
	for _, r := range t.rows {
		fn(r)
	}
}

// Where returns a new table holding the rows accepted by keep.
// The snapshot identity is carried over.
func (t *Table) Where(keep func(r CustomerRecord) bool) *Table {
	if t == nil {
		return &Table{}
	}
	out := &Table{snapshotID: t.snapshotID, loadedAt: t.loadedAt}
	for _, r := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}
