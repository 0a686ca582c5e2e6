package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from
// the database.
//
// Existence is checked before ownership: an unknown order is reported as
// not found, while an existing order read by a non-owner is reported as
// not authorized. The two outcomes stay distinguishable on purpose.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the full order view.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		ownerID       uuid.UUID
		status        int
		address       string
		paymentMethod string
		total         decimal.Decimal
		createdAt     time.Time
		transactionID *string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			status,
			shipping_address,
			payment_method,
			total,
			created_at,
			payment_transaction_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &ownerID, &status, &address, &paymentMethod, &total, &createdAt, &transactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if ownerID != query.OwnerID().Bytes() {
		return GetOrderQueryResponse{}, errs.NewNotAuthorizedError("order", query.OrderID().String())
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:                   orderID,
		Status:               order.Status(status).String(),
		Items:                items,
		ShippingAddress:      address,
		PaymentMethod:        paymentMethod,
		Total:                totalMoney,
		CreatedAt:            createdAt,
		PaymentTransactionID: transactionID,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]ItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		var (
			productID string
			quantity  int
			unitPrice decimal.Decimal
		)
		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, ItemResponse{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: price,
			Subtotal:  price.MulQuantity(quantity),
		})
	}

	return items, rows.Err()
}
