package usecase

import (
	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"

	"github.com/shopspring/decimal"
)

const (
	LabelCustomers   = "Number of customers"
	LabelItemsSold   = "Total number of items sold"
	LabelRevenue     = "Total Revenue (USD)"
	LabelAvgRating   = "Average Rating"
	LabelAvgRecency  = "Average Days Since Last Purchase"
	averagePrecision = 1
)

// ComputeMetricCards returns the five overview cards in display order.
// On an empty table the averages are reported as 0 and marked unavailable.
func ComputeMetricCards(t *customers.Table) []domain.MetricCard {
	ids := make(map[string]struct{}, t.Len())
	items := 0
	revenue := decimal.Zero
	ratingSum := decimal.Zero
	recencySum := decimal.Zero

	t.Each(func(r customers.CustomerRecord) {
		ids[r.CustomerID] = struct{}{}
		items += r.ItemsPurchased
		revenue = revenue.Add(r.TotalSpend)
		ratingSum = ratingSum.Add(decimal.NewFromFloat(r.AverageRating))
		recencySum = recencySum.Add(decimal.NewFromInt(int64(r.DaysSinceLastPurchase)))
	})

	n := t.Len()
	return []domain.MetricCard{
		{Label: LabelCustomers, Value: float64(len(ids)), Available: true},
		{Label: LabelItemsSold, Value: float64(items), Available: true},
		{Label: LabelRevenue, Value: revenue.Round(0).InexactFloat64(), Available: true},
		mean(LabelAvgRating, ratingSum, n),
		mean(LabelAvgRecency, recencySum, n),
	}
}

func mean(label string, sum decimal.Decimal, n int) domain.MetricCard {
	card := domain.MetricCard{Label: label, Precision: averagePrecision}
	if n == 0 {
		return card
	}
	card.Value = sum.Div(decimal.NewFromInt(int64(n))).Round(averagePrecision).InexactFloat64()
	card.Available = true
	return card
}
