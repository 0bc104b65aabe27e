package item

import (
	"errors"
	"fmt"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when an item is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNotEnoughStock is returned when more units are requested than are available.
	ErrNotEnoughStock = errors.New("not enough stock")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item is a purchasable catalog entry together with its available stock.
type Item struct {
	id            kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int
	guard         guard.ConstructorGuard
}

// NewItem creates an Item with an initial stock quantity (zero or more).
//
// Example:
//
//	price, _ := kernel.NewMoney(1000)
//	book, err := item.NewItem(kernel.NewUUID(), "JPA Book", price, 10)
func NewItem(id kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Item, error) {
	return RestoreItem(id, name, price, stockQuantity)
}

// RestoreItem rebuilds an Item from persisted state. It applies the same rules as NewItem.
func RestoreItem(id kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
		it.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// CanRemoveStock checks RemoveStock's preconditions without changing the item.
func (i *Item) CanRemoveStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if i.stockQuantity < quantity {
		return fmt.Errorf("%w: item %s has %d, requested %d", ErrNotEnoughStock, i.name, i.stockQuantity, quantity)
	}
	return nil
}

// RemoveStock takes quantity units out of stock.
func (i *Item) RemoveStock(quantity int) error {
	if err := i.CanRemoveStock(quantity); err != nil {
		return err
	}
	i.stockQuantity -= quantity
	return nil
}

// RestoreStock puts quantity units back into stock, e.g. when an order line is cancelled.
func (i *Item) RestoreStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	i.stockQuantity += quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}
	i.stockQuantity = quantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
