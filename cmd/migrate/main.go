// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"cafe/config"
	"cafe/internal/domain/lifecycle"
	logs "cafe/internal/infra/log"
	"cafe/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop migration", slog.Any("error", err))
	}
}

func migrate(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Schema is up to date")

			return nil
		},
	})
}
