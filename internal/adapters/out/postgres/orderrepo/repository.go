package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Requires a connection opened with TranslateError enabled so that a
// primary key violation surfaces as gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its line items to the database.
// The order row and its items are written in one implicit transaction.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOwner retrieves a page of an owner's orders, newest first.
// The order ID breaks ties between orders created at the same instant.
func (r *GormOrderRepository) ListByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
	page ports.Page,
) ([]*order.Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	page = page.Normalize()

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at DESC, id ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatus advances an order's status in a single compare-and-set
// write. The WHERE clause carries the expected status, so a concurrent
// transition makes the update match zero rows instead of overwriting it.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from order.Status,
	to order.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, id, to)
	}

	return nil
}

// explainMissedUpdate distinguishes a missing order from a lost race.
func (r *GormOrderRepository) explainMissedUpdate(
	ctx context.Context,
	id kernel.UUID,
	to order.Status,
) error {
	var current int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status").
		Where("id = ?", id.Bytes()).
		Take(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("orderID", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewInvalidStateError(order.Status(current).String(), to.String())
}

// ListInStatus retrieves up to limit orders in the given status created
// before the cutoff, oldest first.
func (r *GormOrderRepository) ListInStatus(
	ctx context.Context,
	status order.Status,
	createdBefore time.Time,
	limit int,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND created_at < ?", int(status), createdBefore).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
