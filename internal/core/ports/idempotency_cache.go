package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// IdempotencyCache remembers which order a (owner, idempotency key) pair
// produced so that retried create requests return the original order
// without a second charge.
//
// The cache is an optimization on top of the deterministic order
// identifier: a cache miss or cache failure is never fatal, because a
// retried insert still collides on the order's primary key.
type IdempotencyCache interface {
	// Lookup returns the order ID previously remembered for the key.
	// The second result is false on a miss.
	Lookup(ctx context.Context, ownerID kernel.UUID, key string) (kernel.UUID, bool, error)

	// Remember associates the key with the created order's ID for the
	// cache's retention window.
	Remember(ctx context.Context, ownerID kernel.UUID, key string, orderID kernel.UUID) error
}
