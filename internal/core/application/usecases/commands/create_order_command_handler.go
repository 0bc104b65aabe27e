package commands

import (
	"context"

	"shop/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. The member is loaded, the items are
// locked, the order is built by services.OrderPlacer, and the new order and the
// reduced stock are committed together.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderPlacer(kernel.SystemClock()))
//	if err := handler.Handle(ctx, cmd); errors.Is(err, item.ErrNotEnoughStock) {
//	    // nothing was persisted
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.OrderPlacer
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, placer services.OrderPlacer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     placer,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	memberRepo := uow.MemberRepository()
	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	m, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	stock, err := itemRepo.GetManyForUpdate(ctx, cmd.ItemIDs())
	if err != nil {
		return err
	}

	o, err := h.placer.Place(cmd.OrderID(), m, cmd.Lines(), stock)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
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
