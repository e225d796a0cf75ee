package service

import (
	"context"
	"fmt"

	"cafe-till/internal/menuseed"
	"cafe-till/internal/repository"

	"github.com/rs/zerolog"
)

// SeedMenu loads the seed list and adds any missing items to the menu.
// Items already on the menu keep their price.
func SeedMenu(ctx context.Context, menuRepo repository.MenuRepository, loader menuseed.Loader, path string, logger zerolog.Logger) error {
	items, err := loader.Load(ctx, path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to load menu seed")
		return fmt.Errorf("failed to load menu seed: %w", err)
	}

	inserted, err := menuRepo.Seed(ctx, items)
	if err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	logger.Info().
		Int("seed_items", len(items)).
		Int("inserted", inserted).
		Msg("menu seed applied")

	return nil
}
