// Package ports defines the persistence contracts of the shop core.
// Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository stores members.
type MemberRepository interface {
	// Add persists a new member.
	Add(ctx context.Context, aggregate *member.Member) error

	// Get returns the member with the given id, or an error wrapping errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)
}
