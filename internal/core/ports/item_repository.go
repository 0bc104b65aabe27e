package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository stores catalog items and their stock.
type ItemRepository interface {
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists price and stock changes of an existing item.
	Update(ctx context.Context, aggregate *item.Item) error

	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetManyForUpdate loads the given items and locks their rows until the
	// surrounding transaction ends. Missing ids yield an error wrapping errs.ErrObjectNotFound.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error)
}
