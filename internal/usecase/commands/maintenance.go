package commands

import (
	"context"
	"time"

	"nightpass/internal/pkg/clock"
	"nightpass/internal/pkg/config"
	"nightpass/internal/pkg/errs"
	"nightpass/internal/usecase/shared"
)

// MaintenanceCommands hosts the housekeeping operations run on a schedule
// rather than behind an endpoint.
type MaintenanceCommands interface {
	// SweepPastCartLines deletes cart lines whose event date has passed in
	// the venue time zone. Abandoned anonymous carts otherwise pile up.
	SweepPastCartLines(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	venue *time.Location
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) (MaintenanceCommands, error) {
	venue, err := time.LoadLocation(cfg.Venue.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid venue time zone")
	}
	return &maintenanceCommandsImpl{uow: uow, clock: clk, venue: venue}, nil
}

func (m *maintenanceCommandsImpl) SweepPastCartLines(ctx context.Context) (int64, error) {
	today := clock.CivilDate(m.clock.Now(), m.venue)

	var removed int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.CartLines().DeleteDatedBefore(ctx, today)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
