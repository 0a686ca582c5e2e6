package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput carries one requested order line as received from the caller.
// Validation happens when the command converts it to a domain item.
type ItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CreateOrderCommand represents a request to place a new order.
// The owner identifier comes from the verified caller identity, never from
// the request payload. An optional idempotency key lets clients retry the
// request safely: retries with the same key return the original order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(ownerID, items, "221B Baker St", "stripe", idempotencyKey)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID         kernel.UUID
	items           []order.Item
	shippingAddress string
	paymentMethod   string
	idempotencyKey  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the owner ID, converts every item input to a domain item, and
// requires a shipping address and payment method. The idempotency key is
// optional; an empty key disables retry detection for this request.
func NewCreateOrderCommand(
	ownerID kernel.UUID,
	items []ItemInput,
	shippingAddress string,
	paymentMethod string,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOwnerID(ownerID),
		orderCommand.setItems(items),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the identity of the caller placing the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ShippingAddress returns the delivery address for the order.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// PaymentMethod returns the requested payment method name.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// IdempotencyKey returns the caller-supplied retry key, or an empty string.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		unitPrice, err := kernel.NewMoneyFromFloat(input.UnitPrice)
		if err != nil {
			return err
		}

		item, err := order.NewItem(input.ProductID, input.Quantity, unitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}
