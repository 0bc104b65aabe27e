package commands

import (
	"context"
	"errors"

	"shop/internal/pkg/errs"
)

var ErrNoOrderReadyForDelivery = errors.New("no order ready for delivery")

// DispatchDeliveryCommandHandler starts the delivery of the oldest Ordered order
// whose shipment is still Ready.
//
// Example:
//
//	err := handler.Handle(ctx, NewDispatchDeliveryCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderReadyForDelivery):
//	    // nothing to ship
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDispatchDeliveryCommandHandler(uowFactory OrderUoWFactory) DispatchDeliveryCommandHandler {
	return DispatchDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DispatchDeliveryCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveryCommand) error {
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

	o, err := orderRepo.GetFirstReadyForDelivery(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderReadyForDelivery
	}
	if err != nil {
		return err
	}

	if err = o.StartDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
