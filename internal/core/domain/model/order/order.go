package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrTotalPriceOverflows is returned when the lines of an order add up to more than kernel.Money holds.
	ErrTotalPriceOverflows = errors.New("order total price overflows")
)

// Order is the aggregate root of a purchase. It owns its delivery and its lines;
// the member is referenced by id only.
//
// Invariants held from construction on:
//   - Delivery().OrderID() and every line's OrderID() equal ID()
//   - Status() is Ordered or Cancelled, and Cancelled is terminal
//   - TotalPrice() fits in kernel.Money
//   - A Cancelled order has given every line's units back to stock
type Order struct {
	id        kernel.UUID
	memberID  kernel.UUID
	delivery  *Delivery
	items     []*OrderItem
	orderDate time.Time
	status    Status
	guard     guard.ConstructorGuard
}

// NewOrder places an order for m, shipped by d, made of items (zero or more,
// kept in argument order). The clock stamps OrderDate.
//
// Every argument is validated before d or any item is bound to the order, so a
// failed call leaves them untouched.
//
// Example:
//
//	d, _ := order.NewDelivery(kernel.NewUUID(), m.Address())
//	line, _ := order.NewOrderItem(kernel.NewUUID(), book, book.Price(), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), m, d, kernel.SystemClock(), line)
func NewOrder(
	id kernel.UUID,
	m *member.Member,
	d *Delivery,
	clock kernel.Clock,
	items ...*OrderItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateMember(m),
		validateDelivery(d, id),
		validateItems(items, id),
		validateClock(clock),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:       id,
		memberID: m.ID(),
		guard:    guard.NewConstructorGuard(),
	}

	d.attach(id)
	o.delivery = d

	o.items = make([]*OrderItem, 0, len(items))
	for _, line := range items {
		line.attach(id)
		o.items = append(o.items, line)
	}

	o.status = Ordered
	o.orderDate = clock.Now()

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Delivery and lines must already belong to id.
func RestoreOrder(
	id, memberID kernel.UUID,
	d *Delivery,
	items []*OrderItem,
	orderDate time.Time,
	status Status,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
		validateDelivery(d, id),
		validateItems(items, id),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("order date")
	}

	o := &Order{
		id:        id,
		memberID:  memberID,
		delivery:  d,
		orderDate: orderDate,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}

	o.items = make([]*OrderItem, 0, len(items))
	for _, line := range items {
		line.attach(id)
		o.items = append(o.items, line)
	}
	d.attach(id)

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Items returns the lines in the order they were added. The slice is a copy.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// ItemIDs lists the catalog items referenced by the lines, without duplicates.
func (o *Order) ItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, line := range o.items {
		if _, ok := seen[line.ItemID()]; ok {
			continue
		}
		seen[line.ItemID()] = struct{}{}
		ids = append(ids, line.ItemID())
	}
	return ids
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

// TotalPrice sums the line totals. An order without lines costs zero.
func (o *Order) TotalPrice() kernel.Money {
	total, err := SumLineTotals(o.items)
	if err != nil {
		panic(fmt.Sprintf("order %s: %v", o.id, err))
	}
	return total
}

// SumLineTotals adds up price * count over lines. It returns ErrTotalPriceOverflows
// when the sum does not fit in kernel.Money. NewOrder and RestoreOrder reject such
// lines, so TotalPrice never sees them.
func SumLineTotals(lines []*OrderItem) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		lineTotal, err := line.orderPrice.Multiply(line.count)
		if err != nil {
			return kernel.Money{}, fmt.Errorf("%w: line %s: %w", ErrTotalPriceOverflows, line.id, err)
		}
		if total, err = total.Add(lineTotal); err != nil {
			return kernel.Money{}, fmt.Errorf("%w: %w", ErrTotalPriceOverflows, err)
		}
	}
	return total, nil
}

// Cancel cancels the order and returns every line's units to stock. stock must
// contain the item of each line.
//
// Cancel fails without changing anything when the delivery is Complete, when the
// order is already Cancelled, or when a line's item is missing from stock.
func (o *Order) Cancel(stock ...*item.Item) error {
	if o.delivery.Status() == DeliveryComplete {
		return errs.NewIllegalStateTransitionErrorWithCause(
			"order status", o.status.String(), Cancelled.String(),
			errors.New("a completed delivery cannot be cancelled"))
	}

	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*item.Item, len(stock))
	for _, it := range stock {
		if it.Validate() == nil {
			byID[it.ID()] = it
		}
	}

	resolved := make([]*item.Item, len(o.items))
	for i, line := range o.items {
		it, ok := byID[line.ItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("item", line.ItemID())
		}
		resolved[i] = it
	}

	o.status = next
	for i, line := range o.items {
		if err = line.Cancel(resolved[i]); err != nil {
			return fmt.Errorf("restore stock for line %s: %w", line.ID(), err)
		}
	}

	return nil
}

// StartDelivery hands an Ordered order's shipment to the carrier.
func (o *Order) StartDelivery() error {
	if o.status != Ordered {
		return errs.NewIllegalStateTransitionErrorWithCause(
			"delivery status", o.delivery.Status().String(), DeliveryInProgress.String(),
			fmt.Errorf("order is %s", o.status))
	}
	return o.delivery.Start()
}

// CompleteDelivery marks an Ordered order's shipment as delivered.
func (o *Order) CompleteDelivery() error {
	if o.status != Ordered {
		return errs.NewIllegalStateTransitionErrorWithCause(
			"delivery status", o.delivery.Status().String(), DeliveryComplete.String(),
			fmt.Errorf("order is %s", o.status))
	}
	return o.delivery.Complete()
}

func validateMember(m *member.Member) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("member", err)
	}
	return nil
}

func validateDelivery(d *Delivery, orderID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery", err)
	}
	return d.canAttach(orderID)
}

func validateItems(items []*OrderItem, orderID kernel.UUID) error {
	seen := make(map[*OrderItem]struct{}, len(items))
	for i, line := range items {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("order item #%d", i), err)
		}
		if _, ok := seen[line]; ok {
			return fmt.Errorf("%w: line %s is given twice", ErrOrderItemAlreadyAttached, line.ID())
		}
		seen[line] = struct{}{}
		if err := line.canAttach(orderID); err != nil {
			return err
		}
	}
	if _, err := SumLineTotals(items); err != nil {
		return err
	}
	return nil
}

func validateClock(clock kernel.Clock) error {
	if clock == nil {
		return errs.NewValueIsRequiredError("clock")
	}
	return nil
}
