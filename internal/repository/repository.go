package repository

import (
	"context"

	"cafe-till/internal/model"

	"github.com/google/uuid"
)

// MenuRepository defines the interface for menu data access operations.
type MenuRepository interface {
	// ListItems returns every menu item in display order.
	ListItems(ctx context.Context) ([]model.MenuItem, error)

	// Seed inserts the given items, skipping names already on the menu.
	// Returns the number of items inserted.
	Seed(ctx context.Context, items []model.MenuItem) (int, error)
}

// TransactionRepository defines the interface for the append-only transaction log.
type TransactionRepository interface {
	// Append records one completed payment.
	Append(ctx context.Context, tx *model.Transaction) error

	// List returns transactions newest first with pagination support.
	List(ctx context.Context, limit, offset int) ([]model.Transaction, error)

	// GetByID retrieves a single transaction. Returns nil if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
}
