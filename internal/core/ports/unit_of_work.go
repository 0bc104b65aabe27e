package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// use the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is open, e.g. after Commit.
	Rollback(ctx context.Context) error

	MemberRepository() MemberRepository
	ItemRepository() ItemRepository
	OrderRepository() OrderRepository
}
