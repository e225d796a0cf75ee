package repository

import (
	"context"
	"fmt"

	"cafe-till/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// ListItems returns every menu item ordered by id, which is seed order.
func (r *menuRepository) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, price
		FROM menu
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu rows")
		return nil, fmt.Errorf("error iterating menu: %w", err)
	}

	return items, nil
}

// Seed inserts the given items in one transaction. Names that already exist
// keep their current price.
func (r *menuRepository) Seed(ctx context.Context, items []model.MenuItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO menu (name, price)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`

	inserted := 0
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, item := range items {
			batch.Queue(query, item.Name, item.Price)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for i := 0; i < len(items); i++ {
			tag, err := results.Exec()
			if err != nil {
				r.logger.Error().
					Err(err).
					Str("item", items[i].Name).
					Msg("failed to seed menu item")
				return fmt.Errorf("failed to seed menu item %s: %w", items[i].Name, err)
			}
			inserted += int(tag.RowsAffected())
		}

		return results.Close()
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info().
		Int("offered", len(items)).
		Int("inserted", inserted).
		Msg("menu seeded")

	return inserted, nil
}
