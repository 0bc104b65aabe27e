package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderItemIsNotConstructed is returned when using an OrderItem not built by a constructor.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")
	// ErrOrderItemAlreadyAttached is returned when a line that belongs to one order is given to another.
	ErrOrderItemAlreadyAttached = errors.New("order item is already attached to another order")
)

// MaxOrderItemCount caps a line's quantity so that price * count fits in kernel.Money.
const MaxOrderItemCount = 1_000_000

// OrderItem is one line of an order: count units of an item at the price paid.
type OrderItem struct {
	id         kernel.UUID
	orderID    *kernel.UUID
	itemID     kernel.UUID
	orderPrice kernel.Money
	count      int
	guard      guard.ConstructorGuard
}

// NewOrderItem creates a line for it and takes count units out of its stock.
// Nothing is changed when an error is returned.
func NewOrderItem(id kernel.UUID, it *item.Item, orderPrice kernel.Money, count int) (*OrderItem, error) {
	if err := it.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("item", err)
	}

	line, err := newOrderItem(id, it.ID(), orderPrice, count)
	if err != nil {
		return nil, err
	}

	if err = it.RemoveStock(count); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreOrderItem rebuilds a persisted line bound to orderID. Stock is not touched.
func RestoreOrderItem(id, orderID, itemID kernel.UUID, orderPrice kernel.Money, count int) (*OrderItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	line, err := newOrderItem(id, itemID, orderPrice, count)
	if err != nil {
		return nil, err
	}

	line.orderID = &orderID
	return line, nil
}

func newOrderItem(id, itemID kernel.UUID, orderPrice kernel.Money, count int) (*OrderItem, error) {
	line := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setItemID(itemID),
		line.setOrderPrice(orderPrice),
		line.setCount(count),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *OrderItem) Validate() error {
	if l == nil {
		return ErrOrderItemIsNotConstructed
	}
	return l.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (l *OrderItem) ID() kernel.UUID {
	return l.id
}

// OrderID returns the owning order's id, or the zero UUID while unattached.
func (l *OrderItem) OrderID() kernel.UUID {
	if l.orderID == nil {
		return kernel.UUID{}
	}
	return *l.orderID
}

func (l *OrderItem) ItemID() kernel.UUID {
	return l.itemID
}

func (l *OrderItem) OrderPrice() kernel.Money {
	return l.orderPrice
}

func (l *OrderItem) Count() int {
	return l.count
}

// TotalPrice is orderPrice * count. The constructors bound both factors so the
// product always fits; a line that breaks this panics.
func (l *OrderItem) TotalPrice() kernel.Money {
	total, err := l.orderPrice.Multiply(l.count)
	if err != nil {
		panic(fmt.Sprintf("order item %s: %v", l.id, err))
	}
	return total
}

// Cancel gives the line's units back to it. It does not consult the delivery.
func (l *OrderItem) Cancel(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	if !it.ID().IsEqual(l.itemID) {
		return errs.NewObjectNotFoundErrorWithCause("item", l.itemID,
			fmt.Errorf("got item %s", it.ID()))
	}
	return it.RestoreStock(l.count)
}

func (l *OrderItem) canAttach(orderID kernel.UUID) error {
	if l.orderID != nil && !l.orderID.IsEqual(orderID) {
		return ErrOrderItemAlreadyAttached
	}
	return nil
}

func (l *OrderItem) attach(orderID kernel.UUID) {
	l.orderID = &orderID
}

func (l *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderItem) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item id", err)
	}
	l.itemID = itemID
	return nil
}

func (l *OrderItem) setOrderPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.orderPrice = price
	return nil
}

func (l *OrderItem) setCount(count int) error {
	if count <= 0 || count > MaxOrderItemCount {
		return errs.NewValueIsOutOfRangeError("count", count, 1, MaxOrderItemCount)
	}
	l.count = count
	return nil
}
