package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"eats/config"
	"eats/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection pool. The ping runs on start so a
// misconfigured database fails the application before it serves traffic.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres is not configured")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement writes open their own transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool reports connection waits so a pool too small for the
// catalog and analytics load shows up in the logs.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Database pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two pool snapshots. Waits adding up to
// dbPoolWarnDurationThreshold or more within one interval are warnings.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	}

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
