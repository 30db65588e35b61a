package usecase

import (
	"context"
	"fmt"
	"time"

	"customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/google/uuid"
)

type LoadTableUseCase struct {
	source ports.TableSourcePort
	newID  func() string
	now    func() time.Time
	log    *logger.Logger
}

func NewLoadTableUseCase(source ports.TableSourcePort) *LoadTableUseCase {
	return &LoadTableUseCase{
		source: source,
		newID:  uuid.NewString,
		now:    time.Now,
		log:    logger.New("customers.load"),
	}
}

// Execute loads the snapshot once and stamps it with a fresh snapshot id.
func (uc *LoadTableUseCase) Execute(ctx context.Context) (*domain.Table, error) {
	defer uc.log.Track("load customers")()

	t, err := uc.source.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("load customers: %w", ports.ErrSourceUnavailable)
	}

	stamped := t.WithSnapshot(uc.newID(), uc.now().UTC())
	uc.log.Infof("loaded %d customers snapshot=%s", stamped.Len(), stamped.SnapshotID())
	if stamped.Len() == 0 {
		uc.log.Warnf("snapshot %s holds no rows; metrics will report zero", stamped.SnapshotID())
	}
	return stamped, nil
}
