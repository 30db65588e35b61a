package usecase

import (
	"context"
	"errors"
	"fmt"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	customersuc "customer-behaviour-dashboard/internal/customers/core/usecase"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/ports"
)

var (
	ErrUnknownChart    = errors.New("unknown chart")
	ErrUnknownSelector = customersuc.ErrUnknownSelector
)

type BuildDashboardInput struct {
	Gender customers.Selector // drives the filtered section only
}

type ChartInput struct {
	ID     domain.ChartID
	Gender customers.Selector
}

type BuildDashboardUseCase struct {
	tables   ports.CustomerTablePort
	colors   domain.ColorConfig
	policies domain.HistogramPolicies
}

func NewBuildDashboardUseCase(
	tables ports.CustomerTablePort,
	colors domain.ColorConfig,
	policies domain.HistogramPolicies,
) *BuildDashboardUseCase {
	return &BuildDashboardUseCase{tables: tables, colors: colors, policies: policies}
}

// Execute recomputes every section of the page from the current table.
func (uc *BuildDashboardUseCase) Execute(ctx context.Context, in BuildDashboardInput) (*domain.Dashboard, error) {
	t, err := uc.tables.CurrentTable(ctx)
	if err != nil {
		return nil, err
	}
	filtered, err := customersuc.FilterByGender(t, in.Gender)
	if err != nil {
		return nil, err
	}
	color := uc.colors.For(in.Gender)

	section := func(id, title string, charts ...domain.ChartSpec) domain.Section {
		return domain.Section{ID: id, Title: title, Charts: charts}
	}

	d := &domain.Dashboard{
		SnapshotID: t.SnapshotID(),
		Rows:       t.Len(),
		Gender:     in.Gender,
		Sections: []domain.Section{
			{ID: "overview", Title: "Overview", Metrics: ComputeMetricCards(t)},
			section("gender-distribution", TitleGenderDistribution, GenderDistribution(t, uc.colors)),
			{
				ID:       "by-gender",
				Title:    "Spend and rating by selected gender",
				Filtered: true,
				Charts: []domain.ChartSpec{
					SpendVsRating(filtered, color),
					RatingVsSatisfaction(filtered, color),
				},
			},
			section("spend-vs-age", TitleSpendVsAge, SpendVsAgeByGender(t, uc.colors)),
			section("rating", TitleRatingHistogram, uc.chart(t, domain.ChartRatingHistogram)),
			section("recency", TitleRecencyHistogram, uc.chart(t, domain.ChartRecencyHistogram)),
			section("items", TitleItemsHistogram, uc.chart(t, domain.ChartItemsHistogram)),
			section("membership", TitleMembership, uc.chart(t, domain.ChartMembership)),
		},
	}
	return d, nil
}

// Metrics returns the overview cards for the whole table.
func (uc *BuildDashboardUseCase) Metrics(ctx context.Context) ([]domain.MetricCard, error) {
	t, err := uc.tables.CurrentTable(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeMetricCards(t), nil
}

// Chart builds a single chart. The selector is validated for every chart but
// only narrows the rows of the filtered pair.
func (uc *BuildDashboardUseCase) Chart(ctx context.Context, in ChartInput) (*domain.ChartSpec, error) {
	if !in.ID.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, string(in.ID))
	}
	t, err := uc.tables.CurrentTable(ctx)
	if err != nil {
		return nil, err
	}
	filtered, err := customersuc.FilterByGender(t, in.Gender)
	if err != nil {
		return nil, err
	}

	var spec domain.ChartSpec
	switch in.ID {
	case domain.ChartSpendVsRating:
		spec = SpendVsRating(filtered, uc.colors.For(in.Gender))
	case domain.ChartRatingVsSatisfied:
		spec = RatingVsSatisfaction(filtered, uc.colors.For(in.Gender))
	default:
		spec = uc.chart(t, in.ID)
	}
	return &spec, nil
}

// chart builds the charts that always use the whole table.
func (uc *BuildDashboardUseCase) chart(t *customers.Table, id domain.ChartID) domain.ChartSpec {
	switch id {
	case domain.ChartGenderDistribution:
		return GenderDistribution(t, uc.colors)
	case domain.ChartSpendVsAge:
		return SpendVsAgeByGender(t, uc.colors)
	case domain.ChartRatingHistogram:
		return RatingHistogram(t, uc.colors, uc.policies[domain.FieldAverageRating])
	case domain.ChartRecencyHistogram:
		return RecencyHistogram(t, uc.colors, uc.policies[domain.FieldRecency])
	case domain.ChartItemsHistogram:
		return ItemsHistogram(t, uc.colors, uc.policies[domain.FieldItems])
	case domain.ChartMembership:
		return MembershipHistogram(t, uc.colors, uc.policies[domain.FieldMembership])
	}
	return domain.ChartSpec{ID: id}
}
