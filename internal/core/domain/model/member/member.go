package member

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a member is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMemberIsNotConstructed is returned when using an improperly initialized Member.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")
)

// Member is the ordering party.
//
// Business rules:
//   - Member must have a valid UUID and a non-blank name
//   - Member must have a valid address, used as the default shipping address
//
// Example usage:
//
//	address, _ := kernel.NewAddress("Seoul", "Gangnam-daero 1", "06000")
//	m, err := member.NewMember(kernel.NewUUID(), "Kim", address)
//	if err != nil {
//	    return err
//	}
type Member struct {
	id      kernel.UUID
	name    string
	address kernel.Address
	guard   guard.ConstructorGuard
}

// NewMember creates a Member; every invalid argument is reported in the joined error.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the member was created through NewMember.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// IsEqual compares members by identity.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Address() kernel.Address {
	return m.address
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
