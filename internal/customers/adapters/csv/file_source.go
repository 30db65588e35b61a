package csv

import (
	"context"
	"fmt"
	"os"

	"customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"
)

// FileSource reads the snapshot from a local CSV file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

var _ ports.TableSourcePort = (*FileSource)(nil)

func (s *FileSource) LoadTable(ctx context.Context) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return t, nil
}
