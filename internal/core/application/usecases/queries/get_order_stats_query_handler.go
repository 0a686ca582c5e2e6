package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes order statistics for one owner
// directly in the database.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for owner-scoped statistics.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the stats query.
// An owner with no orders gets zero figures and an empty breakdown.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var (
		totalOrders int
		totalSpent  decimal.Decimal
		average     decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(AVG(total), 0)
		FROM orders
		WHERE owner_id = ?
	`, query.OwnerID().Bytes()).Row()
	if err := row.Scan(&totalOrders, &totalSpent, &average); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	countsByStatus, err := h.loadStatusBreakdown(ctx, query)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	totalSpentMoney, err := kernel.NewMoney(totalSpent)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	averageMoney, err := kernel.NewMoney(average.Round(2))
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return GetOrderStatsQueryResponse{
		TotalOrders:    totalOrders,
		TotalSpent:     totalSpentMoney,
		AverageOrder:   averageMoney,
		CountsByStatus: countsByStatus,
	}, nil
}

func (h GetOrderStatsQueryHandler) loadStatusBreakdown(
	ctx context.Context,
	query GetOrderStatsQuery,
) (map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE owner_id = ?
		GROUP BY status
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status int
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[order.Status(status).String()] = count
	}

	return counts, rows.Err()
}
