package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
)

// CompleteDeliveriesCommand marks every shipment in progress as delivered.
type CompleteDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

func NewCompleteDeliveriesCommand() CompleteDeliveriesCommand {
	return CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}
