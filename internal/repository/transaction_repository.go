package repository

import (
	"context"
	"errors"
	"fmt"

	"cafe-till/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// transactionRepository implements the TransactionRepository interface using PostgreSQL.
type transactionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction log.
func NewTransactionRepository(pool *pgxpool.Pool, logger zerolog.Logger) TransactionRepository {
	return &transactionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "transaction").Logger(),
	}
}

// Append records one completed payment.
func (r *transactionRepository) Append(ctx context.Context, tx *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, total, paid_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, tx.ID, tx.Total, tx.PaidAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("transaction_id", tx.ID.String()).
			Msg("failed to append transaction")
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	r.logger.Debug().
		Str("transaction_id", tx.ID.String()).
		Str("total", tx.Total.StringFixed(2)).
		Msg("transaction appended")

	return nil
}

// List returns transactions newest first with pagination support.
func (r *transactionRepository) List(ctx context.Context, limit, offset int) ([]model.Transaction, error) {
	query := `
		SELECT id, total, paid_at
		FROM transactions
		ORDER BY paid_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query transactions")
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := []model.Transaction{}
	for rows.Next() {
		var tx model.Transaction
		if err := rows.Scan(&tx.ID, &tx.Total, &tx.PaidAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan transaction row")
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating transaction rows")
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// GetByID retrieves a single transaction by its ID.
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `
		SELECT id, total, paid_at
		FROM transactions
		WHERE id = $1
	`

	var tx model.Transaction
	err := r.pool.QueryRow(ctx, query, id).Scan(&tx.ID, &tx.Total, &tx.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("transaction_id", id.String()).Msg("transaction not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("failed to query transaction")
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return &tx, nil
}
