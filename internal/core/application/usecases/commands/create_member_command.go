package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateMemberCommandIsNotConstructed = errors.New(
		"CreateMemberCommand must be created via NewCreateMemberCommand constructor",
	)
	ErrMemberNameIsRequired = errors.New("member name is required")
)

// CreateMemberCommand registers a member with a shipping address.
//
// Example:
//
//	cmd, err := NewCreateMemberCommand(kernel.NewUUID(), "Kim", "Seoul", "Teheran-ro 1", "06000")
//	if err != nil {
//	    return fmt.Errorf("invalid member data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateMemberCommand(memberID kernel.UUID, name, city, street, zipcode string) (CreateMemberCommand, error) {
	cmd := CreateMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setName(name),
		cmd.setAddress(city, street, zipcode),
	); err != nil {
		return CreateMemberCommand{}, err
	}

	return cmd, nil
}

func (c CreateMemberCommand) Validate() error {
	return c.guard.Validate(ErrCreateMemberCommandIsNotConstructed)
}

func (c CreateMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c CreateMemberCommand) Name() string {
	return c.name
}

func (c CreateMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *CreateMemberCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMemberNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateMemberCommand) setAddress(city, street, zipcode string) error {
	address, err := kernel.NewAddress(city, street, zipcode)
	if err != nil {
		return err
	}
	c.address = address
	return nil
}
