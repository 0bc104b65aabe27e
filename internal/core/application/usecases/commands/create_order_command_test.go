package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	memberID := kernel.NewUUID()
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, memberID, []services.OrderLine{
		{ItemID: a, Count: 2},
		{ItemID: b, Count: 1},
		{ItemID: a, Count: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, memberID, cmd.MemberID())
	assert.Len(t, cmd.Lines(), 3)
	assert.Equal(t, []kernel.UUID{a, b}, cmd.ItemIDs())
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewCreateOrderCommand_InvalidLine(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []services.OrderLine{
		{ItemID: kernel.NewUUID(), Count: 0},
	})
	require.ErrorIs(t, err, commands.ErrLineCountIsInvalid)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []services.OrderLine{
		{Count: 1},
	})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, []services.OrderLine{
		{ItemID: kernel.NewUUID(), Count: 1},
	})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
