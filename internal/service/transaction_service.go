package service

import (
	"context"
	"fmt"

	"cafe-till/internal/model"
	"cafe-till/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// transactionService implements TransactionService.
type transactionService struct {
	txRepo repository.TransactionRepository
	logger zerolog.Logger
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txRepo repository.TransactionRepository, logger zerolog.Logger) TransactionService {
	return &transactionService{
		txRepo: txRepo,
		logger: logger.With().Str("service", "transaction").Logger(),
	}
}

// List retrieves transactions newest first with pagination.
func (s *transactionService) List(ctx context.Context, limit, offset int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := s.txRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}

// GetByID retrieves a single transaction by ID.
func (s *transactionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("failed to get transaction")
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}
