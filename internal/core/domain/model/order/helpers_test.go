package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func fixedClock() kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return fixedNow })
}

func newAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06000")
	require.NoError(t, err)
	return address
}

func newMember(t *testing.T) *member.Member {
	t.Helper()
	m, err := member.NewMember(kernel.NewUUID(), "Kim", newAddress(t))
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, name string, price int64, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), name, kernel.MustNewMoney(price), stock)
	require.NoError(t, err)
	return it
}

func newDelivery(t *testing.T) *order.Delivery {
	t.Helper()
	d, err := order.NewDelivery(kernel.NewUUID(), newAddress(t))
	require.NoError(t, err)
	return d
}

func newLine(t *testing.T, it *item.Item, count int) *order.OrderItem {
	t.Helper()
	line, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), count)
	require.NoError(t, err)
	return line
}
