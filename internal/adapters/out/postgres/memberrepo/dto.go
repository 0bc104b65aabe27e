// Package memberrepo persists members with gorm.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO is the member's address, embedded in the members table.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

func fromDomain(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:   m.ID().Bytes(),
		Name: m.Name(),
		Address: AddressDTO{
			City:    m.Address().City(),
			Street:  m.Address().Street(),
			Zipcode: m.Address().Zipcode(),
		},
	}
}

func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return member.NewMember(id, dto.Name, address)
}
