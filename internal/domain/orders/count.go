// Package orders holds the domain model and invariants for the
// order-count check.
package orders

import (
	"errors"
	"github.com/google/uuid"
	"time"
)

const (
	// Table is the collaborator table whose rows are counted. The
	// check assumes it already exists; it is never created here.
	Table = "order_details"

	// Column is the label of the single result column.
	Column = "orders"
)

// CountQuery is the fixed statement issued on every check, verbatim.
const CountQuery = "SELECT COUNT(*) AS orders FROM order_details;"

var (
	// ErrNegativeCount is returned when the server reports a count
	// below zero, which no healthy server can produce.
	ErrNegativeCount = errors.New("order count is negative")

	// ErrNoCount is returned when the count query yields no row.
	ErrNoCount = errors.New("count query returned no rows")
)

// Count is the core domain entity: the single-row, single-column
// result of one check run. It lives only long enough to be rendered.
type Count struct {
	ID        uuid.UUID
	Orders    int64
	CheckedAt time.Time
}

// NewCount constructs the result of the current run and enforces the
// non-negativity invariant on the reported value.
func NewCount(n int64) (*Count, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	return &Count{
		ID:        uuid.New(),
		Orders:    n,
		CheckedAt: time.Now(),
	}, nil
}
