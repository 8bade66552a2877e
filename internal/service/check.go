package service

import (
	"context"
	"fmt"
	domain "github.com/oggyb/restaurant-dbcheck/internal/domain/orders"
	"log"
	"time"
)

// CheckService runs the connectivity check: one fixed count statement
// over an already-open connection, mapped into the domain result.
type CheckService interface {
	Run(ctx context.Context) (*domain.Count, error)
}

// DefaultTimeout bounds the round trip when the configured value is
// missing or invalid.
const DefaultTimeout = 10 * time.Second

type checkService struct {
	repo domain.Repository

	// Round-trip timeout, injected from config at startup.
	timeout time.Duration
}

// NewCheckService creates a check service with the given repository
// and round-trip timeout. A non-positive timeout falls back to
// DefaultTimeout.
func NewCheckService(repo domain.Repository, timeout time.Duration) CheckService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &checkService{
		repo:    repo,
		timeout: timeout,
	}
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Run executes the single round trip: the count statement goes out,
// the one-row result comes back and becomes the domain Count. The
// connection handle itself is owned by the caller; Run never closes it.
func (s *checkService) Run(ctx context.Context) (*domain.Count, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	n, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", domain.Table, err)
	}

	count, err := domain.NewCount(n)
	if err != nil {
		return nil, fmt.Errorf("invalid count from server: %w", err)
	}

	log.Printf("[Service] Counted %d rows in %s (run %s, took %s)",
		count.Orders, domain.Table, count.ID.String(), time.Since(start))

	return count, nil
}
