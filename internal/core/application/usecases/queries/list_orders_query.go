package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of the caller's order history,
// newest first. The page limit is defaulted and clamped by ports.Page.
type ListOrdersQuery struct {
	ownerID kernel.UUID
	page    ports.Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over an owner's order history.
func NewListOrdersQuery(ownerID kernel.UUID, page ports.Page) (ListOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		ownerID: ownerID,
		page:    page.Normalize(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerID returns the identity of the caller.
func (q ListOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Page returns the normalized page window.
func (q ListOrdersQuery) Page() ports.Page {
	return q.page
}

// OrderSummaryResponse represents one order in a history listing.
// Line items are not expanded; ItemCount carries their number.
type OrderSummaryResponse struct {
	ID        kernel.UUID
	Status    string
	Total     kernel.Money
	ItemCount int
	CreatedAt time.Time
}

// ListOrdersQueryResponse represents a page of an owner's order history.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse
	Limit  int
	Offset int
}
