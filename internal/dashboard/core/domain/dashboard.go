package domain

import (
	customers "customer-behaviour-dashboard/internal/customers/core/domain"
)

type Section struct {
	ID       string
	Title    string
	Filtered bool // follows the gender selector
	Metrics  []MetricCard
	Charts   []ChartSpec
}

type Dashboard struct {
	SnapshotID string
	Rows       int
	Gender     customers.Selector
	Sections   []Section
}
