package postgres_test

import (
	"context"
	"sync"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
)

type uowFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

type orderUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

// seedOrder stores a member, one item with the given stock and an order for
// count units of it, and returns the order and the item.
func (suite *UnitOfWorkIntegrationTestSuite) seedOrder(stock, count int) (*order.Order, *item.Item) {
	ctx := context.Background()
	m := suite.newMember()
	it := suite.newItem("JPA Book", 10000, stock)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.MemberRepository().Add(ctx, m))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, it))

	o, err := services.NewOrderPlacer(kernel.SystemClock()).Place(kernel.NewUUID(), m,
		[]services.OrderLine{{ItemID: it.ID(), Count: count}}, []*item.Item{it})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ItemRepository().Update(ctx, it))
	suite.Require().NoError(uow.Commit(ctx))

	return o, it
}

// runTogether starts every fn at the same moment and waits for all of them.
func runTogether(fns ...func() error) []error {
	results := make([]error, len(fns))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = fn()
		}()
	}
	close(start)
	wg.Wait()
	return results
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCancels_RestoreStockOnce() {
	ctx := context.Background()
	o, it := suite.seedOrder(10, 2)

	handler := commands.NewCancelOrderCommandHandler(uowFactory{suite.factory})
	cmd, err := commands.NewCancelOrderCommand(o.ID())
	suite.Require().NoError(err)
	cancel := func() error { return handler.Handle(ctx, cmd) }

	results := runTogether(cancel, cancel)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrIllegalStateTransition)
	}
	suite.Equal(1, succeeded)

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, stored.Status())

	storedItem, err := reader.ItemRepository().Get(ctx, it.ID())
	suite.Require().NoError(err)
	suite.Equal(10, storedItem.StockQuantity())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCancelRacingDeliveryCompletion() {
	ctx := context.Background()
	o, it := suite.seedOrder(10, 2)

	dispatch := commands.NewDispatchDeliveryCommandHandler(orderUoWFactory{suite.factory})
	suite.Require().NoError(dispatch.Handle(ctx, commands.NewDispatchDeliveryCommand()))

	cancelHandler := commands.NewCancelOrderCommandHandler(uowFactory{suite.factory})
	completeHandler := commands.NewCompleteDeliveriesCommandHandler(orderUoWFactory{suite.factory})
	cmd, err := commands.NewCancelOrderCommand(o.ID())
	suite.Require().NoError(err)

	results := runTogether(
		func() error { return cancelHandler.Handle(ctx, cmd) },
		func() error { return completeHandler.Handle(ctx, commands.NewCompleteDeliveriesCommand()) },
	)
	cancelErr, completeErr := results[0], results[1]

	suite.Require().NoError(completeErr)

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	storedItem, err := reader.ItemRepository().Get(ctx, it.ID())
	suite.Require().NoError(err)

	switch stored.Status() {
	case order.Cancelled:
		suite.Require().NoError(cancelErr)
		suite.Equal(order.DeliveryInProgress, stored.Delivery().Status())
		suite.Equal(10, storedItem.StockQuantity())
	case order.Ordered:
		suite.Require().ErrorIs(cancelErr, errs.ErrIllegalStateTransition)
		suite.Equal(order.DeliveryComplete, stored.Delivery().Status())
		suite.Equal(8, storedItem.StockQuantity())
	default:
		suite.Failf("unexpected order status", "%s", stored.Status())
	}

	// Whichever won, a later completion run must not touch a cancelled order.
	suite.Require().NoError(completeHandler.Handle(ctx, commands.NewCompleteDeliveriesCommand()))
	again, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(stored.Status(), again.Status())
}
