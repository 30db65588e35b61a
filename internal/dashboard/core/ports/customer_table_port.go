package ports

import (
	"context"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
)

// CustomerTablePort hands out the table every dashboard render is computed from.
type CustomerTablePort interface {
	CurrentTable(ctx context.Context) (*customers.Table, error)
}
