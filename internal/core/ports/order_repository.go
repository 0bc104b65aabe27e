package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates together with their delivery and lines.
type OrderRepository interface {
	// Add persists a new order, its delivery and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and delivery changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its delivery and lines in their original order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByMember returns the member's orders, oldest first. This is the
	// member-to-orders direction of the relationship.
	ListByMember(ctx context.Context, memberID kernel.UUID) ([]*order.Order, error)

	// GetFirstReadyForDelivery returns the oldest Ordered order whose delivery is Ready.
	// Returns an error wrapping errs.ErrObjectNotFound when there is none.
	GetFirstReadyForDelivery(ctx context.Context) (*order.Order, error)

	// GetAllInDelivery returns every order whose delivery is InProgress.
	GetAllInDelivery(ctx context.Context) ([]*order.Order, error)
}
