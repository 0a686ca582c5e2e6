package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery summarizes an owner's order history: volume, spend,
// and a per-status breakdown.
type GetOrderStatsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query scoped to one owner.
func NewGetOrderStatsQuery(ownerID kernel.UUID) (GetOrderStatsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OwnerID returns the identity of the caller.
func (q GetOrderStatsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetOrderStatsQueryResponse represents aggregate figures over an owner's
// orders. Monetary figures cover all orders regardless of status.
type GetOrderStatsQueryResponse struct {
	TotalOrders    int
	TotalSpent     kernel.Money
	AverageOrder   kernel.Money
	CountsByStatus map[string]int
}
