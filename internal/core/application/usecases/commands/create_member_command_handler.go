package commands

import (
	"context"

	"shop/internal/core/domain/model/member"
)

// CreateMemberCommandHandler stores new members.
type CreateMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

func NewCreateMemberCommandHandler(uowFactory MemberUoWFactory) CreateMemberCommandHandler {
	return CreateMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the member and persists it in one transaction.
func (h CreateMemberCommandHandler) Handle(ctx context.Context, cmd CreateMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MemberRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
