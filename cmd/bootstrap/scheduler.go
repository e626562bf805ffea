package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"nightpass/internal/pkg/config"
	"nightpass/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the stale cart sweep on a cron schedule in the venue
// time zone. Lines for past event dates are unsellable and only hold stock.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, maintenance commands.MaintenanceCommands) error {
	if !cfg.Sweep.Enabled {
		slog.Info("cart sweep disabled")
		return nil
	}

	venue, err := time.LoadLocation(cfg.Venue.TimeZone)
	if err != nil {
		return err
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(venue))
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(cfg.Sweep.CartSchedule, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			removed, err := maintenance.SweepPastCartLines(ctx)
			if err != nil {
				slog.Error("cart sweep failed", "error", err.Error())
				return
			}
			slog.Info("cart sweep completed", "removed", removed)
		}),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("scheduler started", "cart_schedule", cfg.Sweep.CartSchedule)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})

	return nil
}
