package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrDispatchDeliveryCommandIsNotConstructed = errors.New(
	"DispatchDeliveryCommand must be created via NewDispatchDeliveryCommand constructor",
)

// DispatchDeliveryCommand hands the oldest waiting shipment to the carrier.
// It is parameterless and is issued periodically by the dispatch job.
type DispatchDeliveryCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchDeliveryCommand() DispatchDeliveryCommand {
	return DispatchDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *DispatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryCommandIsNotConstructed)
}
