package testhelpers

import (
	"context"
	"fmt"

	"github.com/transit-network/internal/repository/postgres"
	"github.com/transit-network/migrations"
)

// ApplyMigrations применяет встроенные миграции к тестовой базе
func (tdb *TestDB) ApplyMigrations(ctx context.Context) error {
	applied, err := postgres.ApplyMigrations(ctx, tdb.Wrap(), migrations.FS)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, file := range applied {
		tdb.Logger.Debug("Applied migration: " + file)
	}
	return nil
}
