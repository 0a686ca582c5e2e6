package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrPaymentAlreadyAttached is returned when a second payment transaction
	// is attached to an order. An order funds exactly one creation charge.
	ErrPaymentAlreadyAttached = errors.New("order already has a payment transaction attached")
)

// Order represents a customer purchase in the system. It is the aggregate root that
// manages the order lifecycle from creation through fulfillment or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid owner identifier
//   - Must contain at least one item; items are immutable after creation
//   - Total always equals the sum of item subtotals, computed once at creation
//   - The owner is set at construction from the verified caller identity and never changes
//   - Status transitions follow the rules defined on Status
//   - At most one payment transaction reference, attached once
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID identifies the principal that created the order
	ownerID kernel.UUID

	// items is the immutable list of purchased lines
	items []Item

	// shippingAddress is the opaque delivery address string
	shippingAddress string

	// paymentMethod is the payment-method hint supplied at creation
	paymentMethod string

	// total is the sum of item subtotals, computed once at creation
	total kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// paymentTransactionID is a weak reference to the funding transaction
	paymentTransactionID *string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Pending status; callers invoke it only after a successful payment authorization.
//
// The total is computed here from the item subtotals and never recomputed.
// The owner identifier must come from the verified caller identity, never from
// a request payload.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	shippingAddress string,
	paymentMethod string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range order.items {
		total = total.Add(item.Subtotal())
	}
	order.total = total

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation workflow. The stored status and total are taken as-is after basic
// validation; business rules were enforced when the order was first created.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	shippingAddress string,
	paymentMethod string,
	total kernel.Money,
	status Status,
	createdAt time.Time,
	paymentTransactionID *string,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
		order.setPaymentMethod(paymentMethod),
		total.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.total = total
	order.status = status
	order.paymentTransactionID = paymentTransactionID

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the principal that created the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// IsOwnedBy reports whether the given principal created the order.
func (o *Order) IsOwnedBy(ownerID kernel.UUID) bool {
	return o.ownerID.IsEqual(ownerID)
}

// Items returns a copy of the order's lines. The aggregate's own slice is
// never exposed, keeping the items immutable from the outside.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ShippingAddress returns the delivery address supplied at creation.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// PaymentMethod returns the payment-method hint supplied at creation.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Total returns the order total computed at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentTransactionID returns the identifier of the funding payment
// transaction, or nil if none has been attached.
func (o *Order) PaymentTransactionID() *string {
	return o.paymentTransactionID
}

// AttachPayment records the funding payment transaction reference.
// The reference is weak (lookup only) and can be set exactly once;
// a second attachment returns ErrPaymentAlreadyAttached.
func (o *Order) AttachPayment(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}
	if o.paymentTransactionID != nil {
		return ErrPaymentAlreadyAttached
	}

	o.paymentTransactionID = &transactionID
	return nil
}

// Cancel marks the order as cancelled by its owner.
//
// Only pending orders may be cancelled; any other status results in an
// InvalidStateError and leaves the order unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartProcessing moves a pending order into fulfillment.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship marks a processing order as shipped.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the order's owner identifier.
// This is a private method used only during construction.
func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

// setItems validates and copies the order's lines.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	copied := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[i] = item
	}

	o.items = copied
	return nil
}

// setShippingAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = shippingAddress
	return nil
}

// setPaymentMethod validates and sets the payment-method hint.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}
