package orders

import "context"

// Repository defines the single read operation the check performs.
//
// It is implemented by infrastructure layers (e.g. GORM, sqlc, etc.)
// while the service layer depends only on this interface.
type Repository interface {
	// CountOrders executes the fixed count statement against the open
	// connection and returns the value of the orders column.
	CountOrders(ctx context.Context) (int64, error)
}
