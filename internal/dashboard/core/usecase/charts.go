package usecase

import (
	"maps"
	"slices"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"

	"github.com/shopspring/decimal"
)

const (
	TitleGenderDistribution = "Gender distribution"
	TitleSpendVsRating      = "Total spend vs Average rating"
	TitleRatingVsSatisfied  = "Average Rating vs Satisfaction Level"
	TitleSpendVsAge         = "Total spend vs Age by Gender"
	TitleRatingHistogram    = "Rating by Gender"
	TitleRecencyHistogram   = "Days Since Last Purchase by Gender"
	TitleItemsHistogram     = "Number of Items Purchased by Gender"
	TitleMembership         = "Membership Type by Gender"

	axisAverageRating = "Average Rating"
	axisTotalSpend    = "Total Spend"
	axisSatisfaction  = "Satisfaction Level"
	axisAge           = "Age"
	axisRecency       = "Days Since Last Purchase"
	axisItems         = "Number of Items Purchased"
	axisMembership    = "Membership Type"
	axisOccurrences   = "Number of Occurences"
	axisClients       = "Number of clients"

	legendGender = "Gender"
)

func legend(title string, reversed bool) domain.Legend {
	return domain.Legend{Orientation: "h", Anchor: "bottom", Title: title, Reversed: reversed}
}

// GenderDistribution counts rows per gender. Slices follow the order in
// which each gender first appears in the table.
func GenderDistribution(t *customers.Table, colors domain.ColorConfig) domain.ChartSpec {
	var order []customers.Gender
	counts := map[customers.Gender]int{}
	t.Each(func(r customers.CustomerRecord) {
		if _, seen := counts[r.Gender]; !seen {
			order = append(order, r.Gender)
		}
		counts[r.Gender]++
	})

	series := make([]domain.Series, 0, len(order))
	for _, g := range order {
		series = append(series, domain.Series{
			Name:   string(g),
			Color:  colors.ForGender(g),
			Points: []domain.Point{{Y: float64(counts[g]), Label: string(g)}},
		})
	}
	return domain.ChartSpec{
		ID:     domain.ChartGenderDistribution,
		Title:  TitleGenderDistribution,
		Kind:   domain.KindPie,
		Series: series,
		Legend: legend(legendGender, false),
	}
}

// SpendVsRating plots one point per row: x is the average rating, y the total spend.
func SpendVsRating(t *customers.Table, color string) domain.ChartSpec {
	points := make([]domain.Point, 0, t.Len())
	t.Each(func(r customers.CustomerRecord) {
		points = append(points, domain.Point{
			X:     r.AverageRating,
			Y:     r.TotalSpend.InexactFloat64(),
			Label: r.CustomerID,
		})
	})
	return domain.ChartSpec{
		ID:     domain.ChartSpendVsRating,
		Title:  TitleSpendVsRating,
		Kind:   domain.KindScatter,
		Series: []domain.Series{{Name: axisTotalSpend, Color: color, Points: points}},
		Legend: legend("", false),
		XAxis:  domain.Axis{Title: axisAverageRating},
		YAxis:  domain.Axis{Title: axisTotalSpend},
	}
}

// RatingVsSatisfaction plots the average rating against the satisfaction
// level. The x axis is categorical; categories keep first-appearance order
// and rows without a level are left out.
func RatingVsSatisfaction(t *customers.Table, color string) domain.ChartSpec {
	var levels []string
	index := map[string]int{}
	points := make([]domain.Point, 0, t.Len())
	t.Each(func(r customers.CustomerRecord) {
		if r.SatisfactionLevel == "" {
			return
		}
		i, ok := index[r.SatisfactionLevel]
		if !ok {
			i = len(levels)
			index[r.SatisfactionLevel] = i
			levels = append(levels, r.SatisfactionLevel)
		}
		points = append(points, domain.Point{X: float64(i), Y: r.AverageRating, Label: r.SatisfactionLevel})
	})
	return domain.ChartSpec{
		ID:     domain.ChartRatingVsSatisfied,
		Title:  TitleRatingVsSatisfied,
		Kind:   domain.KindScatter,
		Series: []domain.Series{{Name: axisAverageRating, Color: color, Points: points}},
		Legend: legend("", false),
		XAxis:  domain.Axis{Title: axisSatisfaction, Categories: levels},
		YAxis:  domain.Axis{Title: axisAverageRating},
	}
}

// SpendVsAgeByGender sums total spend per (gender, age) and draws one bar
// series per gender, ages ascending. Genders are never summed together.
func SpendVsAgeByGender(t *customers.Table, colors domain.ColorConfig) domain.ChartSpec {
	sums := map[customers.Gender]map[int]decimal.Decimal{}
	t.Each(func(r customers.CustomerRecord) {
		byAge, ok := sums[r.Gender]
		if !ok {
			byAge = map[int]decimal.Decimal{}
			sums[r.Gender] = byAge
		}
		byAge[r.Age] = byAge[r.Age].Add(r.TotalSpend)
	})

	var series []domain.Series
	for _, g := range customers.Genders {
		byAge, ok := sums[g]
		if !ok {
			continue
		}
		s := domain.Series{Name: string(g), Color: colors.ForGender(g)}
		for _, age := range slices.Sorted(maps.Keys(byAge)) {
			s.Points = append(s.Points, domain.Point{X: float64(age), Y: byAge[age].InexactFloat64()})
		}
		series = append(series, s)
	}
	return domain.ChartSpec{
		ID:      domain.ChartSpendVsAge,
		Title:   TitleSpendVsAge,
		Kind:    domain.KindBar,
		Series:  series,
		BarMode: domain.BarModeGroup,
		Legend:  legend(legendGender, false),
		XAxis:   domain.Axis{Title: axisAge},
		YAxis:   domain.Axis{Title: axisTotalSpend},
	}
}

func RatingHistogram(t *customers.Table, colors domain.ColorConfig, p domain.HistogramPolicy) domain.ChartSpec {
	spec := numericHistogram(t, colors, p, func(r customers.CustomerRecord) decimal.Decimal {
		return decimal.NewFromFloat(r.AverageRating)
	})
	spec.ID, spec.Title = domain.ChartRatingHistogram, TitleRatingHistogram
	spec.XAxis.Title = axisAverageRating
	return spec
}

func RecencyHistogram(t *customers.Table, colors domain.ColorConfig, p domain.HistogramPolicy) domain.ChartSpec {
	spec := numericHistogram(t, colors, p, func(r customers.CustomerRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(r.DaysSinceLastPurchase))
	})
	spec.ID, spec.Title = domain.ChartRecencyHistogram, TitleRecencyHistogram
	spec.XAxis.Title = axisRecency
	return spec
}

func ItemsHistogram(t *customers.Table, colors domain.ColorConfig, p domain.HistogramPolicy) domain.ChartSpec {
	spec := numericHistogram(t, colors, p, func(r customers.CustomerRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(r.ItemsPurchased))
	})
	spec.ID, spec.Title = domain.ChartItemsHistogram, TitleItemsHistogram
	spec.XAxis.Title = axisItems
	return spec
}

// numericHistogram derives one set of edges from the whole table and counts
// each gender against it, so every series shares the same bins.
func numericHistogram(
	t *customers.Table,
	colors domain.ColorConfig,
	p domain.HistogramPolicy,
	field func(r customers.CustomerRecord) decimal.Decimal,
) domain.ChartSpec {
	all := make([]decimal.Decimal, 0, t.Len())
	byGender := map[customers.Gender][]decimal.Decimal{}
	t.Each(func(r customers.CustomerRecord) {
		v := field(r)
		all = append(all, v)
		byGender[r.Gender] = append(byGender[r.Gender], v)
	})

	spec := domain.ChartSpec{
		Kind:    domain.KindHistogram,
		BarMode: p.Mode,
		Legend:  legend(legendGender, true),
		YAxis:   domain.Axis{Title: axisOccurrences},
	}
	layout, ok := newBinLayout(all, p)
	if ok {
		spec.Binning = layout.bins()
	}
	for _, g := range customers.Genders {
		s := domain.Series{
			Name:    string(g),
			Color:   colors.ForGender(g),
			Outline: p.Mode == domain.BarModeOverlay,
		}
		if ok {
			s.Bins = layout.count(byGender[g])
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}

// MembershipHistogram counts clients per membership type and gender.
// Categories keep first-appearance order across the whole table.
func MembershipHistogram(t *customers.Table, colors domain.ColorConfig, p domain.HistogramPolicy) domain.ChartSpec {
	var types []string
	counts := map[customers.Gender]map[string]int{}
	t.Each(func(r customers.CustomerRecord) {
		if !slices.Contains(types, r.MembershipType) {
			types = append(types, r.MembershipType)
		}
		if counts[r.Gender] == nil {
			counts[r.Gender] = map[string]int{}
		}
		counts[r.Gender][r.MembershipType]++
	})

	spec := domain.ChartSpec{
		ID:      domain.ChartMembership,
		Title:   TitleMembership,
		Kind:    domain.KindHistogram,
		BarMode: p.Mode,
		Legend:  legend(legendGender, true),
		XAxis:   domain.Axis{Title: axisMembership, Categories: types},
		YAxis:   domain.Axis{Title: axisClients},
	}
	for _, g := range customers.Genders {
		s := domain.Series{
			Name:    string(g),
			Color:   colors.ForGender(g),
			Outline: p.Mode == domain.BarModeOverlay,
		}
		for i, m := range types {
			s.Bins = append(s.Bins, domain.Bin{
				Start: float64(i),
				End:   float64(i + 1),
				Label: m,
				Count: counts[g][m],
			})
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}
