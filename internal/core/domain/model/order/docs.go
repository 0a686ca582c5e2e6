// Package order provides domain entities and business logic for order management
// in the ordering system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, total, and lifecycle
//   - Item: A value object for a single order line (product, quantity, unit price)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, owner, and at least one item
//   - The total equals the sum of item subtotals, computed once at creation
//   - Order status follows a defined workflow: Pending -> Processing -> Shipped
//   - Only pending orders can be cancelled, and only by their owner
//   - Cancelled and Failed are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
