package services

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// ErrNoOrderLines is returned when an order is requested without any lines.
var ErrNoOrderLines = errors.New("order must have at least one line")

// OrderLine is a requested quantity of one catalog item.
type OrderLine struct {
	ItemID kernel.UUID
	Count  int
}

// OrderPlacer builds orders from catalog items.
//
// Business rules:
//   - At least one line is required
//   - Every line's item must be supplied in stock
//   - Stock and the order total are checked for all lines before any item is changed
//   - Lines are priced at the item's current price
//   - The delivery goes to the member's address
//
// Example usage:
//
//	placer := services.NewOrderPlacer(kernel.SystemClock())
//	o, err := placer.Place(orderID, m, []services.OrderLine{{ItemID: book.ID(), Count: 2}}, []*item.Item{book})
type OrderPlacer struct {
	clock kernel.Clock
}

func NewOrderPlacer(clock kernel.Clock) OrderPlacer {
	if clock == nil {
		clock = kernel.SystemClock()
	}
	return OrderPlacer{clock: clock}
}

// Place creates order id for m. On error no item's stock is changed.
func (p OrderPlacer) Place(id kernel.UUID, m *member.Member, lines []OrderLine, stock []*item.Item) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("member", err)
	}

	resolved, err := p.reserve(lines, stock)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	if err != nil {
		return nil, err
	}

	orderItems := make([]*order.OrderItem, 0, len(lines))
	for i, line := range lines {
		it := resolved[i]
		orderItem, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), line.Count)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, orderItem)
	}

	return order.NewOrder(id, m, delivery, p.clock, orderItems...)
}

// reserve resolves each line's item and checks the summed quantity per item.
func (p OrderPlacer) reserve(lines []OrderLine, stock []*item.Item) ([]*item.Item, error) {
	if len(lines) == 0 {
		return nil, ErrNoOrderLines
	}

	byID := make(map[kernel.UUID]*item.Item, len(stock))
	for _, it := range stock {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		byID[it.ID()] = it
	}

	resolved := make([]*item.Item, len(lines))
	requested := make(map[kernel.UUID]int, len(lines))
	for i, line := range lines {
		if line.Count <= 0 || line.Count > order.MaxOrderItemCount {
			return nil, errs.NewValueIsOutOfRangeError("count", line.Count, 1, order.MaxOrderItemCount)
		}
		it, ok := byID[line.ItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("item", line.ItemID)
		}
		resolved[i] = it
		requested[line.ItemID] += line.Count
	}

	for itemID, count := range requested {
		if err := byID[itemID].CanRemoveStock(count); err != nil {
			return nil, fmt.Errorf("line for item %s: %w", itemID, err)
		}
	}

	if err := checkTotal(lines, resolved); err != nil {
		return nil, err
	}

	return resolved, nil
}

// checkTotal mirrors order.SumLineTotals on the requested lines, before any
// order item takes units out of stock.
func checkTotal(lines []OrderLine, resolved []*item.Item) error {
	total := kernel.ZeroMoney()
	for i, line := range lines {
		lineTotal, err := resolved[i].Price().Multiply(line.Count)
		if err != nil {
			return fmt.Errorf("%w: %w", order.ErrTotalPriceOverflows, err)
		}
		if total, err = total.Add(lineTotal); err != nil {
			return fmt.Errorf("%w: %w", order.ErrTotalPriceOverflows, err)
		}
	}
	return nil
}
