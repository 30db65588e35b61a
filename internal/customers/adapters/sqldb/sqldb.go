package sqldb

import (
	"context"
	"database/sql"

	"customer-behaviour-dashboard/internal/platform/logger"
)

// RowScanner is the part of *sql.Rows the repository reads through.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

var log = logger.New("customers.sqldb")

type sqlDB struct {
	db     *sql.DB
	driver string
}

// NewSQLDB adapts an opened pool. The driver name only labels debug output.
func NewSQLDB(db *sql.DB, driver string) DB {
	return &sqlDB{db: db, driver: driver}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	defer log.Track(s.driver + " query")()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
