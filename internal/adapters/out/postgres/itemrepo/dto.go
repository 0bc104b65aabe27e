// Package itemrepo persists catalog items and their stock with gorm.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO is one row of the items table. The check constraint backs the
// domain rule that stock never goes negative.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Price         int64     `gorm:"type:bigint;not null"`
	StockQuantity int       `gorm:"type:int;not null;check:stock_quantity >= 0"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:            it.ID().Bytes(),
		Name:          it.Name(),
		Price:         it.Price().Amount(),
		StockQuantity: it.StockQuantity(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, price, dto.StockQuantity)
}
