package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves an owner's order history from the database.
// Results are sorted newest first with the order ID as a tie breaker, so a
// page boundary falling between two orders created at the same instant
// stays stable across requests.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order history reads.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of order summaries.
// An owner with no orders gets an empty page, not an error.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	page := query.Page()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total,
			o.created_at,
			COUNT(i.id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.owner_id = ?
		GROUP BY o.id, o.status, o.total, o.created_at
		ORDER BY o.created_at DESC, o.id ASC
		LIMIT ? OFFSET ?
	`, query.OwnerID().Bytes(), page.Limit, page.Offset).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0, page.Limit)
	for rows.Next() {
		var (
			id        uuid.UUID
			status    int
			total     decimal.Decimal
			createdAt time.Time
			itemCount int
		)
		if err = rows.Scan(&id, &status, &total, &createdAt, &itemCount); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return ListOrdersQueryResponse{}, moneyErr
		}

		summaries = append(summaries, OrderSummaryResponse{
			ID:        orderID,
			Status:    order.Status(status).String(),
			Total:     totalMoney,
			ItemCount: itemCount,
			CreatedAt: createdAt,
		})
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders: summaries,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
