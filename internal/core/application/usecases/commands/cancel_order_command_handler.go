package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels orders. The order row and its items' rows are
// locked before Order.Cancel runs, so two cancellations of the same order, or a
// cancellation racing a new order for the same item, are serialised by the database.
//
// Business errors from the aggregate (a completed delivery, an already cancelled
// order) are returned as they are and nothing is persisted.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	itemRepo := uow.ItemRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	stock, err := itemRepo.GetManyForUpdate(ctx, o.ItemIDs())
	if err != nil {
		return err
	}

	if err = o.Cancel(stock...); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	for _, it := range stock {
		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
