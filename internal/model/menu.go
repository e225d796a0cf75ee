package model

import "github.com/shopspring/decimal"

// MenuItem represents a purchasable item on the cafe menu.
type MenuItem struct {
	ID    int64           `json:"id" db:"id"`
	Name  string          `json:"name" db:"name"`
	Price decimal.Decimal `json:"price" db:"price"`
}
