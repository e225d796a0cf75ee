package model

import "time"

// LineEntryView is the display form of one menu item's entered quantity.
type LineEntryView struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// SessionView is the display form of the billing session.
type SessionView struct {
	Entries []LineEntryView `json:"entries"`
	Total   string          `json:"total"`
	State   string          `json:"state"`
	Now     time.Time       `json:"now"`
}

// QuantityRequest carries the raw text a clerk typed into a quantity field.
// The handler also accepts a JSON number in its place.
type QuantityRequest struct {
	Quantity string `json:"quantity"`
}
