package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cafe-till/internal/billing"
	"cafe-till/internal/model"
	"cafe-till/internal/repository"

	"github.com/rs/zerolog"
)

// tillService implements TillService.
type tillService struct {
	mu             sync.Mutex
	session        *billing.Session
	menu           []model.MenuItem
	currencySymbol string
	now            func() time.Time
	logger         zerolog.Logger
}

// TillOption configures the till service.
type TillOption func(*tillService)

// WithClock overrides the time source for session views and transaction stamps.
func WithClock(now func() time.Time) TillOption {
	return func(s *tillService) {
		s.now = now
	}
}

// NewTillService reads the menu and starts the billing session. A menu that
// cannot be read is fatal for the till.
func NewTillService(
	ctx context.Context,
	menuRepo repository.MenuRepository,
	txLog billing.TransactionLog,
	currencySymbol string,
	logger zerolog.Logger,
	opts ...TillOption,
) (TillService, error) {
	logger = logger.With().Str("service", "till").Logger()

	menu, err := menuRepo.ListItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load menu")
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	s := &tillService{
		menu:           menu,
		currencySymbol: currencySymbol,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.session = billing.NewSession(menu, txLog, billing.WithClock(s.now))

	logger.Info().Int("menu_items", len(menu)).Msg("billing session started")

	return s, nil
}

// Menu returns a copy of the menu the session was started with.
func (s *tillService) Menu(ctx context.Context) []model.MenuItem {
	out := make([]model.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// Session returns the current entries, total, and state.
func (s *tillService) Session(ctx context.Context) *model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view()
}

// SetQuantity records raw clerk input for one menu item.
func (s *tillService) SetQuantity(ctx context.Context, name, raw string) (*model.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.session.SetQuantity(name, raw)
	if err != nil {
		s.logger.Warn().Str("item", name).Msg("quantity entered for unknown item")
		return nil, err
	}

	s.logger.Debug().
		Str("item", name).
		Str("raw", raw).
		Int("quantity", q).
		Msg("quantity set")

	return s.view(), nil
}

// CalculateTotal recomputes the total without persisting anything.
func (s *tillService) CalculateTotal(ctx context.Context) *model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.session.CalculateTotal()
	s.logger.Debug().Str("total", total.StringFixed(2)).Msg("total calculated")

	return s.view()
}

// CompletePayment records the last calculated total and clears the session.
func (s *tillService) CompletePayment(ctx context.Context) (*model.PaymentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.session.CompletePayment(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNothingToPay) {
			s.logger.Warn().Msg("payment attempted with zero total")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to complete payment")
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", tx.ID.String()).
		Str("total", tx.Total.StringFixed(2)).
		Msg("payment completed")

	return &model.PaymentResponse{
		Transaction: *tx,
		Message:     fmt.Sprintf("Payment of %s completed successfully!", s.money(tx.Total.StringFixed(2))),
	}, nil
}

// Clear resets all quantities and the total.
func (s *tillService) Clear(ctx context.Context) *model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Clear()
	s.logger.Debug().Msg("session cleared")

	return s.view()
}

// view must be called with mu held.
func (s *tillService) view() *model.SessionView {
	snap := s.session.Snapshot()

	v := &model.SessionView{
		Entries: make([]model.LineEntryView, len(snap.Entries)),
		Total:   snap.Total.StringFixed(2),
		State:   snap.State.String(),
		Now:     s.now(),
	}
	for i, e := range snap.Entries {
		v.Entries[i] = model.LineEntryView{
			Name:     e.Item.Name,
			Price:    e.Item.Price.StringFixed(2),
			Quantity: e.Quantity,
		}
	}

	return v
}

func (s *tillService) money(amount string) string {
	return s.currencySymbol + amount
}
