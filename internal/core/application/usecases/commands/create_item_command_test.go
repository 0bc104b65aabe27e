package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(id, "JPA Book", 10000, 100)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "JPA Book", cmd.Name())
	assert.Equal(t, int64(10000), cmd.Price().Amount())
	assert.Equal(t, 100, cmd.StockQuantity())
}

func TestNewCreateItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateItemCommand(kernel.NewUUID(), "", -1, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemNameIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, commands.ErrStockQuantityIsInvalid)
}
