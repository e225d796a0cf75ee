package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one completed payment in the transaction log.
type Transaction struct {
	ID     uuid.UUID       `json:"id" db:"id"`
	Total  decimal.Decimal `json:"total" db:"total"`
	PaidAt time.Time       `json:"paidAt" db:"paid_at"`
}

// PaymentResponse is returned after a successful payment.
type PaymentResponse struct {
	Transaction Transaction `json:"transaction"`
	Message     string      `json:"message"`
}
