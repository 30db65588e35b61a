package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"
)

// Fake source implementing TableSourcePort
type fakeTableSource struct {
	LoadFn func(ctx context.Context) (*domain.Table, error)
	called bool
}

func (f *fakeTableSource) LoadTable(ctx context.Context) (*domain.Table, error) {
	f.called = true
	return f.LoadFn(ctx)
}

func newTestUseCase(src ports.TableSourcePort) *LoadTableUseCase {
	uc := NewLoadTableUseCase(src)
	uc.newID = func() string { return "snap-1" }
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestLoadTable_Success(t *testing.T) {
	src := &fakeTableSource{
		LoadFn: func(ctx context.Context) (*domain.Table, error) {
			return domain.NewTable([]domain.CustomerRecord{
				{CustomerID: "101", Gender: domain.GenderFemale, Age: 29},
				{CustomerID: "102", Gender: domain.GenderMale, Age: 34},
			}), nil
		},
	}

	tbl, err := newTestUseCase(src).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !src.called {
		t.Fatalf("expected LoadTable to be called")
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if tbl.SnapshotID() != "snap-1" {
		t.Fatalf("expected snapshot id snap-1, got %q", tbl.SnapshotID())
	}
	if tbl.LoadedAt().IsZero() {
		t.Fatalf("expected loaded-at timestamp")
	}
}

// ------------------------------------------------------------
// EMPTY TABLE IS NOT AN ERROR
// ------------------------------------------------------------

func TestLoadTable_Empty(t *testing.T) {
	src := &fakeTableSource{
		LoadFn: func(ctx context.Context) (*domain.Table, error) {
			return domain.NewTable(nil), nil
		},
	}

	tbl, err := newTestUseCase(src).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("expected empty table, got %d rows", tbl.Len())
	}
}

// ------------------------------------------------------------
// SOURCE ERRORS
// ------------------------------------------------------------

func TestLoadTable_SourceError(t *testing.T) {
	src := &fakeTableSource{
		LoadFn: func(ctx context.Context) (*domain.Table, error) {
			return nil, ports.ErrMalformedRow
		},
	}

	tbl, err := newTestUseCase(src).Execute(context.Background())
	if !errors.Is(err, ports.ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
	if tbl != nil {
		t.Fatalf("expected nil table on error")
	}
}

func TestLoadTable_NilTable(t *testing.T) {
	src := &fakeTableSource{
		LoadFn: func(ctx context.Context) (*domain.Table, error) {
			return nil, nil
		},
	}

	_, err := newTestUseCase(src).Execute(context.Background())
	if !errors.Is(err, ports.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
