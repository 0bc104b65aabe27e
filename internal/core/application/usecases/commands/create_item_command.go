package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrItemNameIsRequired     = errors.New("item name is required")
	ErrStockQuantityIsInvalid = errors.New("stock quantity must not be negative")
)

// CreateItemCommand adds a catalog item with its initial stock.
//
// Example:
//
//	cmd, err := NewCreateItemCommand(kernel.NewUUID(), "JPA Book", 10000, 100)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

func NewCreateItemCommand(itemID kernel.UUID, name string, price int64, stockQuantity int) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateItemCommand) Name() string {
	return c.name
}

func (c CreateItemCommand) Price() kernel.Money {
	return c.price
}

func (c CreateItemCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(price int64) error {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}
	c.price = money
	return nil
}

func (c *CreateItemCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrStockQuantityIsInvalid
	}
	c.stockQuantity = stockQuantity
	return nil
}
