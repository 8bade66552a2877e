package ordersgorm

import (
	"context"

	"github.com/oggyb/restaurant-dbcheck/internal/db"
	"github.com/oggyb/restaurant-dbcheck/internal/domain/orders"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of the orders.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// countRow receives the single row the count statement produces.
type countRow struct {
	Orders int64 `gorm:"column:orders"`
}

// CountOrders issues the fixed count statement and returns the value
// of the orders column. Exactly one row is expected; SQL and driver
// errors pass through unchanged so the caller sees the client
// library's own failure.
func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	var row countRow

	result := r.db.WithContext(ctx).Raw(orders.CountQuery).Scan(&row)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, orders.ErrNoCount
	}

	return row.Orders, nil
}

// compile-time interface check
var _ orders.Repository = (*Repository)(nil)
