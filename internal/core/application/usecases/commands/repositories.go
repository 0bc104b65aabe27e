// Package commands contains the write use cases of the shop. Every handler
// follows the same pattern: validate the command, open a unit of work, load and
// lock what it needs, run the domain operation, persist and commit.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of work views used by the handlers. Each handler asks only for the
// repositories it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MemberUoW manages transactions for member-only operations.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// ItemUoW manages transactions for catalog-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions that only change orders and their deliveries.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans members, items and orders. Placing and cancelling an order
	// change stock and the order in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   stock, err := uow.ItemRepository().GetManyForUpdate(ctx, o.ItemIDs())
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MemberRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
