package main

import (
	"context"
	"io"

	"customer-behaviour-dashboard/internal/customers/adapters/csv"
	"customer-behaviour-dashboard/internal/customers/adapters/sqldb"
	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"
	customersUsecase "customer-behaviour-dashboard/internal/customers/core/usecase"
	"customer-behaviour-dashboard/internal/platform/config"
	"customer-behaviour-dashboard/internal/platform/logger"
)

// newTableSource picks the source selected by the config. The closer is nil
// unless a database connection was opened.
func newTableSource(cfg *config.Config) (ports.TableSourcePort, io.Closer, error) {
	switch cfg.Source() {
	case config.SourceSQL:
		db, driver, err := sqldb.Open(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		repo, err := sqldb.NewCustomerRepository(sqldb.NewSQLDB(db, driver), cfg.Table)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Infof("reading customers from %s table %q", driver, cfg.Table)
		return repo, db, nil
	case config.SourceFile:
		log.Infof("reading customers from %s", cfg.DataFile)
		return csv.NewFileSource(cfg.DataFile), nil, nil
	default:
		log.Infof("downloading customers snapshot to %s", cfg.CachePath)
		return csv.NewRemoteSource(cfg.SourceURL, cfg.CachePath, csv.NewHTTPFetcher(cfg.FetchTimeout)), nil, nil
	}
}

// loadTable loads the snapshot once; the database, if any, is not needed afterwards.
func loadTable(ctx context.Context, cfg *config.Config) (*customers.Table, error) {
	src, closer, err := newTableSource(cfg)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	return customersUsecase.NewLoadTableUseCase(src).Execute(ctx)
}
