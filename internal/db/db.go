package db

import "context"

// DB is a generic database port that allows swapping
// GORM, sqlc, pgx, bun, ent or even in-memory DB.
type DB interface {
	Conn() any

	// Ping verifies the server answers over the open handle.
	Ping(ctx context.Context) error

	// Close releases the underlying connection handle.
	Close() error
}
