package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewCancelOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	a := newTestItem(t, 1000, 10)
	b := newTestItem(t, 2000, 5)
	o := newTestOrder(t, a, b)
	cmd, _ := commands.NewCancelOrderCommand(o.ID())

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		itemRepo.On("GetManyForUpdate", ctx, []kernel.UUID{a.ID(), b.ID()}).
			Return([]*item.Item{a, b}, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		itemRepo.On("Update", ctx, a).Return(nil).Once(),
		itemRepo.On("Update", ctx, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, 10, a.StockQuantity())
	assert.Equal(t, 5, b.StockQuantity())
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedDelivery(t *testing.T) {
	ctx := t.Context()
	a := newTestItem(t, 1000, 10)
	o := newTestOrder(t, a)
	require.NoError(t, o.StartDelivery())
	require.NoError(t, o.CompleteDelivery())
	cmd, _ := commands.NewCancelOrderCommand(o.ID())

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	itemRepo.On("GetManyForUpdate", ctx, []kernel.UUID{a.ID()}).Return([]*item.Item{a}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
	assert.Equal(t, order.Ordered, o.Status())
	assert.Equal(t, 9, a.StockQuantity())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(id)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ItemRepository").Return(new(MockItemRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
