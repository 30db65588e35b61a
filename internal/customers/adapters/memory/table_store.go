package memory

import (
	"context"
	"errors"

	"customer-behaviour-dashboard/internal/customers/core/domain"
)

var ErrNoSnapshot = errors.New("no customer snapshot loaded")

// TableStore holds the snapshot loaded at startup. The table is read-only,
// so concurrent readers need no locking.
type TableStore struct {
	table *domain.Table
}

func NewTableStore(t *domain.Table) *TableStore {
	return &TableStore{table: t}
}

func (s *TableStore) CurrentTable(ctx context.Context) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.table == nil {
		return nil, ErrNoSnapshot
	}
	return s.table, nil
}
