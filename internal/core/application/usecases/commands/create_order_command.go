package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrLineCountIsInvalid    = errors.New("line count must be greater than 0")
)

// CreateOrderCommand places an order for a member. The caller chooses the order id.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), memberID, []services.OrderLine{
//	    {ItemID: bookID, Count: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	lines    []services.OrderLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID, memberID kernel.UUID, lines []services.OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMemberID(memberID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []services.OrderLine {
	lines := make([]services.OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ItemIDs lists the distinct items of the lines in first-seen order.
func (c CreateOrderCommand) ItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.ItemID]; ok {
			continue
		}
		seen[line.ItemID] = struct{}{}
		ids = append(ids, line.ItemID)
	}
	return ids
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for i, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return fmt.Errorf("line #%d: %w", i, err)
		}
		if line.Count <= 0 {
			return fmt.Errorf("line #%d: %w", i, ErrLineCountIsInvalid)
		}
	}

	c.lines = make([]services.OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
