// Package ports defines the outbound contracts of the ordering core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

const (
	// DefaultPageLimit is the page size used when a caller does not specify one.
	DefaultPageLimit = 10

	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 100
)

// Page describes a window over an owner's order history.
// A zero Limit falls back to DefaultPageLimit; limits above
// MaxPageLimit are clamped.
type Page struct {
	Limit  int
	Offset int
}

// Normalize returns a copy of the page with the limit defaulted and clamped
// and a negative offset reset to zero.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// and for advancing their status under optimistic concurrency.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// Returns errs.ErrConflict when an order with the same identifier
	// already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByOwner retrieves a page of an owner's orders, newest first.
	// Orders created at the same instant are tie-broken by identifier
	// so pagination is stable.
	ListByOwner(ctx context.Context, ownerID kernel.UUID, page Page) ([]*order.Order, error)

	// UpdateStatus advances an order from an expected status to a new one
	// in a single compare-and-set write. Returns errs.ErrObjectNotFound
	// when the order does not exist and errs.ErrInvalidState when the
	// stored status no longer matches the expected one.
	UpdateStatus(ctx context.Context, id kernel.UUID, from order.Status, to order.Status) error

	// ListInStatus retrieves up to limit orders in the given status that
	// entered it before the cutoff, oldest first. Used by the fulfillment
	// job to pick up work in batches.
	ListInStatus(ctx context.Context, status order.Status, createdBefore time.Time, limit int) ([]*order.Order, error)
}
