// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded through the Items
// association. The owner and status columns are indexed for the history
// listing and the fulfillment sweep.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID              uuid.UUID `gorm:"type:uuid;index:idx_orders_owner_created"`
	Items                []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	ShippingAddress      string
	PaymentMethod        string
	Total                decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status               int             `gorm:"index"`
	CreatedAt            time.Time       `gorm:"index:idx_orders_owner_created"`
	PaymentTransactionID *string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the order_items table.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OwnerID:              aggregate.OwnerID().Bytes(),
		Items:                items,
		ShippingAddress:      aggregate.ShippingAddress(),
		PaymentMethod:        aggregate.PaymentMethod(),
		Total:                aggregate.Total().Amount(),
		Status:               int(aggregate.Status()),
		CreatedAt:            aggregate.CreatedAt(),
		PaymentTransactionID: aggregate.PaymentTransactionID(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and the payment
// reference using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		items,
		dto.ShippingAddress,
		dto.PaymentMethod,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.PaymentTransactionID,
	)
}
