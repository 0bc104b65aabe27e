package commands

import (
	"context"

	"shop/internal/core/domain/model/item"
)

// CreateItemCommandHandler stores new catalog items.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	it, err := item.NewItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.StockQuantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
