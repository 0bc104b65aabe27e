// Package orderrepo persists the order aggregate with gorm: the orders row, its
// deliveries row and its order_items rows are written and read together.
package orderrepo

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row plus its owned rows. Statuses are stored by name.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	OrderDate time.Time      `gorm:"type:timestamptz;not null;index"`
	Status    string         `gorm:"type:varchar(16);not null;index"`
	Delivery  *DeliveryDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  string     `gorm:"type:varchar(16);not null;index"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// OrderItemDTO is one order line. Position keeps the lines in the order they were added.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"type:int;not null"`
	OrderPrice int64     `gorm:"type:bigint;not null"`
	Count      int       `gorm:"type:int;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	d := o.Delivery()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, line := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:         line.ID().Bytes(),
			OrderID:    orderID,
			ItemID:     line.ItemID().Bytes(),
			Position:   i,
			OrderPrice: line.OrderPrice().Amount(),
			Count:      line.Count(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  o.MemberID().Bytes(),
		OrderDate: o.OrderDate(),
		Status:    o.Status().String(),
		Delivery: &DeliveryDTO{
			ID:      d.ID().Bytes(),
			OrderID: orderID,
			Address: AddressDTO{
				City:    d.Address().City(),
				Street:  d.Address().Street(),
				Zipcode: d.Address().Zipcode(),
			},
			Status: d.Status().String(),
		},
		Items: items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	d, err := deliveryToDomain(id, dto.Delivery)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		line, lineErr := orderItemToDomain(id, itemDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, line)
	}

	return order.RestoreOrder(id, memberID, d, items, dto.OrderDate.UTC(), status)
}

func deliveryToDomain(orderID kernel.UUID, dto *DeliveryDTO) (*order.Delivery, error) {
	if dto == nil {
		return nil, errors.New("order has no delivery row")
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseDeliveryStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, orderID, address, status)
}

func orderItemToDomain(orderID kernel.UUID, dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.OrderPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, orderID, itemID, price, dto.Count)
}
