package service

import (
	"context"

	"cafe-till/internal/model"

	"github.com/google/uuid"
)

// TillService drives the till's single billing session.
type TillService interface {
	// Menu returns the menu the session was started with.
	Menu(ctx context.Context) []model.MenuItem

	// Session returns the current entries, total, and state.
	Session(ctx context.Context) *model.SessionView

	// SetQuantity records raw clerk input for one menu item.
	SetQuantity(ctx context.Context, name, raw string) (*model.SessionView, error)

	// CalculateTotal recomputes the total without persisting anything.
	CalculateTotal(ctx context.Context) *model.SessionView

	// CompletePayment records the last calculated total and clears the session.
	CompletePayment(ctx context.Context) (*model.PaymentResponse, error)

	// Clear resets all quantities and the total.
	Clear(ctx context.Context) *model.SessionView
}

// TransactionService defines read access to the transaction log.
type TransactionService interface {
	// List retrieves transactions newest first with pagination.
	List(ctx context.Context, limit, offset int) ([]model.Transaction, error)

	// GetByID retrieves a single transaction by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
}
