// Package billing holds the till's in-memory billing session: the menu lines
// a clerk fills in, the derived total, and the hand-off of a completed
// payment to the transaction log.
package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cafe-till/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State is the position of a session in its Idle -> Totaled -> Idle cycle.
type State int

const (
	// StateIdle means no total has been calculated since the last clear or payment.
	StateIdle State = iota
	// StateTotaled means a total has been calculated and can be paid.
	StateTotaled
)

// String returns the lower-case state name used in API responses.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTotaled:
		return "totaled"
	default:
		return "unknown"
	}
}

// TransactionLog is the append-only sink for completed payments.
type TransactionLog interface {
	Append(ctx context.Context, tx *model.Transaction) error
}

// LineEntry is one menu item and the quantity entered for it.
type LineEntry struct {
	Item     model.MenuItem
	Quantity int
}

// Subtotal returns price x quantity for the entry.
func (e LineEntry) Subtotal() decimal.Decimal {
	return e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session is a single till's billing state. It is not safe for concurrent
// use; callers serialise access.
type Session struct {
	entries []LineEntry
	index   map[string]int
	total   decimal.Decimal
	state   State
	log     TransactionLog
	now     func() time.Time
}

// NewSession starts a session with one zero-quantity entry per menu item,
// kept in menu order.
func NewSession(items []model.MenuItem, log TransactionLog, opts ...Option) *Session {
	s := &Session{
		entries: make([]LineEntry, len(items)),
		index:   make(map[string]int, len(items)),
		total:   decimal.Zero,
		state:   StateIdle,
		log:     log,
		now:     time.Now,
	}

	for i, item := range items {
		s.entries[i] = LineEntry{Item: item}
		s.index[item.Name] = i
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ParseQuantity converts raw clerk input into a quantity. Anything that is
// not a non-negative integer counts as 0. Single underscores between digits
// are accepted as separators, so "1_000" is 1000.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "_") {
		if !digitSeparated(s) {
			return 0
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// digitSeparated reports whether every underscore in s sits between two digits.
func digitSeparated(s string) bool {
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

// SetQuantity records the raw input for the named item and returns the
// quantity it was interpreted as. The total is not recomputed.
func (s *Session) SetQuantity(name, raw string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, model.ErrUnknownItem
	}

	q := ParseQuantity(raw)
	s.entries[i].Quantity = q
	return q, nil
}

// CalculateTotal recomputes the total from the current entries, rounded to
// two decimal places. Nothing is persisted.
func (s *Session) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.entries {
		total = total.Add(e.Subtotal())
	}

	s.total = total.Round(2)
	s.state = StateTotaled
	return s.total
}

// CompletePayment appends the last calculated total to the transaction log
// and clears the session. A zero total is refused with model.ErrNothingToPay
// and nothing is written. If the log rejects the append the session is left
// as it was.
func (s *Session) CompletePayment(ctx context.Context) (*model.Transaction, error) {
	if s.total.IsZero() {
		return nil, model.ErrNothingToPay
	}

	tx := &model.Transaction{
		ID:     uuid.New(),
		Total:  s.total,
		PaidAt: s.now(),
	}

	if err := s.log.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.Clear()
	return tx, nil
}

// Clear resets every quantity and the total to zero.
func (s *Session) Clear() {
	for i := range s.entries {
		s.entries[i].Quantity = 0
	}
	s.total = decimal.Zero
	s.state = StateIdle
}

// Total returns the last calculated total.
func (s *Session) Total() decimal.Decimal {
	return s.total
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Snapshot is a point-in-time copy of a session for display.
type Snapshot struct {
	Entries []LineEntry
	Total   decimal.Decimal
	State   State
}

// Snapshot returns the entries, total, and state as one consistent copy.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Entries: s.Entries(),
		Total:   s.total,
		State:   s.state,
	}
}

// Entries returns a copy of the line entries in menu order.
func (s *Session) Entries() []LineEntry {
	out := make([]LineEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
