package ports

import (
	"context"
	"errors"

	"customer-behaviour-dashboard/internal/customers/core/domain"
)

var (
	ErrSourceUnavailable = errors.New("customer source unavailable")
	ErrMalformedRow      = errors.New("malformed customer row")
	ErrMissingColumn     = errors.New("missing required column")
)

// TableSourcePort loads a full customer snapshot.
//
//	table != nil, err = nil  -> snapshot loaded (may hold zero rows)
//	table = nil,  err != nil -> source unreachable or rows malformed
type TableSourcePort interface {
	LoadTable(ctx context.Context) (*domain.Table, error)
}
