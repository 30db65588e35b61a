package usecase_test

import (
	"testing"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/usecase"

	"github.com/shopspring/decimal"
)

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestComputeMetricCards(t *testing.T) {
	tbl := customers.NewTable([]customers.CustomerRecord{
		{CustomerID: "1", ItemsPurchased: 3, TotalSpend: decimal.RequireFromString("10.40"), AverageRating: 4.5, DaysSinceLastPurchase: 10},
		{CustomerID: "2", ItemsPurchased: 5, TotalSpend: decimal.RequireFromString("20.30"), AverageRating: 3.2, DaysSinceLastPurchase: 20},
		{CustomerID: "2", ItemsPurchased: 7, TotalSpend: decimal.RequireFromString("5.25"), AverageRating: 4.0, DaysSinceLastPurchase: 25},
	})

	cards := usecase.ComputeMetricCards(tbl)
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}

	want := []struct {
		label string
		value float64
	}{
		{usecase.LabelCustomers, 2},
		{usecase.LabelItemsSold, 15},
		{usecase.LabelRevenue, 36},
		{usecase.LabelAvgRating, 3.9},
		{usecase.LabelAvgRecency, 18.3},
	}
	for i, w := range want {
		if cards[i].Label != w.label {
			t.Fatalf("card %d: expected label %q, got %q", i, w.label, cards[i].Label)
		}
		if cards[i].Value != w.value {
			t.Fatalf("card %q: expected %v, got %v", w.label, w.value, cards[i].Value)
		}
		if !cards[i].Available {
			t.Fatalf("card %q should be available", w.label)
		}
	}
	if cards[3].Precision != 1 || cards[4].Precision != 1 {
		t.Fatalf("averages should carry one decimal")
	}
}

func TestComputeMetricCards_ItemTotalIsExact(t *testing.T) {
	var rows []customers.CustomerRecord
	sum := 0
	for i := 0; i < 1000; i++ {
		rows = append(rows, customers.CustomerRecord{CustomerID: string(rune('a' + i%26)), ItemsPurchased: i})
		sum += i
	}

	cards := usecase.ComputeMetricCards(customers.NewTable(rows))
	if int(cards[1].Value) != sum {
		t.Fatalf("expected %d items, got %v", sum, cards[1].Value)
	}
	if cards[0].Value != 26 {
		t.Fatalf("expected 26 distinct customers, got %v", cards[0].Value)
	}
}

// ------------------------------------------------------------
// EMPTY TABLE
// ------------------------------------------------------------

func TestComputeMetricCards_EmptyTable(t *testing.T) {
	for name, tbl := range map[string]*customers.Table{
		"no rows":   customers.NewTable(nil),
		"nil table": nil,
	} {
		t.Run(name, func(t *testing.T) {
			cards := usecase.ComputeMetricCards(tbl)
			if len(cards) != 5 {
				t.Fatalf("expected 5 cards, got %d", len(cards))
			}
			for _, c := range cards {
				if c.Value != 0 {
					t.Fatalf("card %q: expected 0, got %v", c.Label, c.Value)
				}
			}
			if !cards[0].Available || !cards[1].Available || !cards[2].Available {
				t.Fatalf("totals should stay available on an empty table")
			}
			if cards[3].Available || cards[4].Available {
				t.Fatalf("averages should be unavailable on an empty table")
			}
		})
	}
}
