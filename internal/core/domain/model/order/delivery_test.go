package order_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should create ready unattached delivery", func(t *testing.T) {
		id := kernel.NewUUID()
		address := newAddress(t)

		d, err := order.NewDelivery(id, address)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.Address().IsEqual(address))
		assert.Equal(t, order.DeliveryReady, d.Status())
		require.Error(t, d.OrderID().Validate())
	})

	t.Run("should fail with invalid id and address", func(t *testing.T) {
		d, err := order.NewDelivery(kernel.UUID{}, kernel.Address{})

		assert.Nil(t, d)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})
}

func TestRestoreDelivery(t *testing.T) {
	orderID := kernel.NewUUID()

	d, err := order.RestoreDelivery(kernel.NewUUID(), orderID, newAddress(t), order.DeliveryInProgress)

	require.NoError(t, err)
	assert.True(t, d.OrderID().IsEqual(orderID))
	assert.Equal(t, order.DeliveryInProgress, d.Status())

	_, err = order.RestoreDelivery(kernel.NewUUID(), orderID, newAddress(t), order.DeliveryUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDelivery_Progress(t *testing.T) {
	d := newDelivery(t)

	require.ErrorIs(t, d.Complete(), errs.ErrIllegalStateTransition)
	require.NoError(t, d.Start())
	assert.Equal(t, order.DeliveryInProgress, d.Status())
	require.ErrorIs(t, d.Start(), errs.ErrIllegalStateTransition)
	require.NoError(t, d.Complete())
	assert.Equal(t, order.DeliveryComplete, d.Status())
}

func TestDelivery_Validate(t *testing.T) {
	var nilDelivery *order.Delivery
	assert.Equal(t, order.ErrDeliveryIsNotConstructed, nilDelivery.Validate())

	var zero order.Delivery
	assert.Equal(t, order.ErrDeliveryIsNotConstructed, zero.Validate())
}
