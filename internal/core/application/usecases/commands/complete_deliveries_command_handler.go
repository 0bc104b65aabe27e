package commands

import (
	"context"
)

// CompleteDeliveriesCommandHandler completes all InProgress deliveries in one
// transaction. Once complete, those orders can no longer be cancelled.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllInDelivery(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = o.CompleteDelivery(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
