// Package queries contains read operations over the order store.
// Queries bypass the domain aggregates and read the database directly,
// returning response structs shaped for presentation.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
// The owner identifier comes from the verified caller identity; only the
// order's owner may read it.
type GetOrderQuery struct {
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
func NewGetOrderQuery(orderID, ownerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), ownerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OwnerID returns the identity of the caller.
func (q GetOrderQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// ItemResponse represents one order line in a query response.
type ItemResponse struct {
	ProductID string
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// GetOrderQueryResponse represents the complete view of a single order.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	Status               string
	Items                []ItemResponse
	ShippingAddress      string
	PaymentMethod        string
	Total                kernel.Money
	CreatedAt            time.Time
	PaymentTransactionID *string
}
