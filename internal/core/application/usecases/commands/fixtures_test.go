package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func testPlacer() services.OrderPlacer {
	return services.NewOrderPlacer(kernel.ClockFunc(func() time.Time { return testNow }))
}

func newTestMember(t *testing.T) *member.Member {
	t.Helper()
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06000")
	require.NoError(t, err)
	m, err := member.NewMember(kernel.NewUUID(), "Kim", address)
	require.NoError(t, err)
	return m
}

func newTestItem(t *testing.T, price int64, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "Book", kernel.MustNewMoney(price), stock)
	require.NoError(t, err)
	return it
}

// newTestOrder places an order for one unit of each item.
func newTestOrder(t *testing.T, items ...*item.Item) *order.Order {
	t.Helper()
	lines := make([]services.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, services.OrderLine{ItemID: it.ID(), Count: 1})
	}
	o, err := testPlacer().Place(kernel.NewUUID(), newTestMember(t), lines, items)
	require.NoError(t, err)
	return o
}
