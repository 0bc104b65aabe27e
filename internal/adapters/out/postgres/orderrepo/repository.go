package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOrderIsStale is returned by Update when the stored statuses moved on since the
// order was read, e.g. another transaction cancelled it.
var ErrOrderIsStale = errors.New("order was changed by another transaction")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its delivery and lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order and delivery statuses. Lines never change after placement.
//
// Each status is only written over a state it can be reached from, so a stale
// snapshot never moves a row backwards (Cancelled to Ordered, Complete to
// InProgress). Such a write fails with ErrOrderIsStale.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND status IN ?", dto.ID, orderStatusesBefore(aggregate.Status())).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(db, &OrderDTO{}, "id = ?", dto.ID, "order", aggregate.ID().String())
	}

	result = db.Model(&DeliveryDTO{}).
		Where("order_id = ? AND status IN ?", dto.ID, deliveryStatusesBefore(aggregate.Delivery().Status())).
		Update("status", dto.Delivery.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(db, &DeliveryDTO{}, "order_id = ?", dto.ID, "delivery", aggregate.Delivery().ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.withAggregate(ctx), id)
}

// GetForUpdate locks the orders row for the rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.withAggregate(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) ListByMember(ctx context.Context, memberID kernel.UUID) ([]*order.Order, error) {
	if err := memberID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withAggregate(ctx).
		Where("member_id = ?", memberID.Bytes()).
		Order("order_date, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetFirstReadyForDelivery skips rows locked by a concurrent dispatcher.
func (r *GormOrderRepository) GetFirstReadyForDelivery(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.withAggregate(ctx).
		Select("orders.*").
		Joins("JOIN deliveries ON deliveries.order_id = orders.id").
		Where("orders.status = ? AND deliveries.status = ?", order.Ordered.String(), order.DeliveryReady.String()).
		Order("orders.order_date, orders.id").
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}, Options: "SKIP LOCKED"}).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first ready for delivery")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInDelivery returns Ordered orders whose delivery is InProgress, locking
// their rows. Orders locked by another transaction, such as a running cancel,
// are skipped until the next call. A cancelled order's shipment is never
// completed, so it is left out.
func (r *GormOrderRepository) GetAllInDelivery(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withAggregate(ctx).
		Select("orders.*").
		Joins("JOIN deliveries ON deliveries.order_id = orders.id").
		Where("orders.status = ? AND deliveries.status = ?", order.Ordered.String(), order.DeliveryInProgress.String()).
		Order("orders.order_date, orders.id").
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}, Options: "SKIP LOCKED"}).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// missingOrStale tells a row that does not exist from one whose status moved on.
func (r *GormOrderRepository) missingOrStale(db *gorm.DB, model any, query string, id any, name, objectID string) error {
	var count int64
	if err := db.Model(model).Where(query, id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(name, objectID)
	}
	return fmt.Errorf("%w: %s %s", ErrOrderIsStale, name, objectID)
}

// orderStatusesBefore lists the stored statuses an order may be moved to s from.
func orderStatusesBefore(s order.Status) []string {
	if s == order.Cancelled {
		return []string{order.Ordered.String(), order.Cancelled.String()}
	}
	return []string{s.String()}
}

// deliveryStatusesBefore lists the stored statuses a delivery may be moved to s
// from. An aggregate may take several steps before it is saved.
func deliveryStatusesBefore(s order.DeliveryStatus) []string {
	switch s {
	case order.DeliveryInProgress:
		return []string{order.DeliveryReady.String(), order.DeliveryInProgress.String()}
	case order.DeliveryComplete:
		return []string{order.DeliveryReady.String(), order.DeliveryInProgress.String(), order.DeliveryComplete.String()}
	default:
		return []string{s.String()}
	}
}

func (r *GormOrderRepository) withAggregate(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}

func (r *GormOrderRepository) first(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := db.First(&dto, "orders.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
