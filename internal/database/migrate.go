package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema files in name order. Every file is
// written to be re-runnable, so Migrate is safe on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			logger.Error().Err(err).Str("migration", name).Msg("failed to apply migration")
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}

		logger.Debug().Str("migration", name).Msg("migration applied")
	}

	logger.Info().Int("count", len(names)).Msg("database schema up to date")

	return nil
}
