package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
// The owner comes from the access token, never from the body.
type CreateOrderRequest struct {
	Items           []ItemRequest `json:"items"`
	ShippingAddress string        `json:"shipping_address"`
	PaymentMethod   string        `json:"payment_method"`
}

// ItemRequest is one requested order line.
type ItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ItemResponse is one order line in an order view.
type ItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse is the full view of a single order.
type OrderResponse struct {
	ID                   string         `json:"id"`
	Status               string         `json:"status"`
	Items                []ItemResponse `json:"items"`
	ShippingAddress      string         `json:"shipping_address"`
	PaymentMethod        string         `json:"payment_method"`
	Total                float64        `json:"total"`
	CreatedAt            time.Time      `json:"created_at"`
	PaymentTransactionID *string        `json:"payment_transaction_id,omitempty"`
}

// OrderSummaryResponse is one order in a history listing.
type OrderSummaryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

// CancelOrderResponse confirms a cancellation and carries the final order view.
type CancelOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

// ListOrdersResponse is one page of the caller's order history.
type ListOrdersResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// OrderStatsResponse summarizes the caller's order history.
type OrderStatsResponse struct {
	TotalOrders    int            `json:"total_orders"`
	TotalSpent     float64        `json:"total_spent"`
	AverageOrder   float64        `json:"average_order"`
	CountsByStatus map[string]int `json:"counts_by_status"`
}

// orderResponseFromDomain maps a freshly created aggregate to its view.
func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Float64(),
			Subtotal:  item.Subtotal().Float64(),
		})
	}

	return OrderResponse{
		ID:                   aggregate.ID().String(),
		Status:               aggregate.Status().String(),
		Items:                items,
		ShippingAddress:      aggregate.ShippingAddress(),
		PaymentMethod:        aggregate.PaymentMethod(),
		Total:                aggregate.Total().Float64(),
		CreatedAt:            aggregate.CreatedAt(),
		PaymentTransactionID: aggregate.PaymentTransactionID(),
	}
}

// orderResponseFromQuery maps a query result to its view.
func orderResponseFromQuery(view queries.GetOrderQueryResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, ItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Float64(),
			Subtotal:  item.Subtotal.Float64(),
		})
	}

	return OrderResponse{
		ID:                   view.ID.String(),
		Status:               view.Status,
		Items:                items,
		ShippingAddress:      view.ShippingAddress,
		PaymentMethod:        view.PaymentMethod,
		Total:                view.Total.Float64(),
		CreatedAt:            view.CreatedAt,
		PaymentTransactionID: view.PaymentTransactionID,
	}
}

// listResponseFromQuery maps a history page to its view.
func listResponseFromQuery(page queries.ListOrdersQueryResponse) ListOrdersResponse {
	summaries := make([]OrderSummaryResponse, 0, len(page.Orders))
	for _, summary := range page.Orders {
		summaries = append(summaries, OrderSummaryResponse{
			ID:        summary.ID.String(),
			Status:    summary.Status,
			Total:     summary.Total.Float64(),
			ItemCount: summary.ItemCount,
			CreatedAt: summary.CreatedAt,
		})
	}

	return ListOrdersResponse{
		Orders: summaries,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

// statsResponseFromQuery maps owner statistics to their view.
func statsResponseFromQuery(stats queries.GetOrderStatsQueryResponse) OrderStatsResponse {
	return OrderStatsResponse{
		TotalOrders:    stats.TotalOrders,
		TotalSpent:     stats.TotalSpent.Float64(),
		AverageOrder:   stats.AverageOrder.Float64(),
		CountsByStatus: stats.CountsByStatus,
	}
}
