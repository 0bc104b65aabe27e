package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when using a Delivery not built by NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")
	// ErrDeliveryAlreadyAttached is returned when a delivery that belongs to one order is given to another.
	ErrDeliveryAlreadyAttached = errors.New("delivery is already attached to another order")
)

// Delivery is the shipment record of exactly one order. It is created Ready and
// becomes bound to its order when the order is constructed.
type Delivery struct {
	id      kernel.UUID
	orderID *kernel.UUID
	address kernel.Address
	status  DeliveryStatus
	guard   guard.ConstructorGuard
}

// NewDelivery creates an unattached Ready delivery to the given address.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	d := &Delivery{
		status: DeliveryReady,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery already bound to orderID.
func RestoreDelivery(id, orderID kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		orderID.Validate(),
		d.setAddress(address),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	d.orderID = &orderID
	d.status = status
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the owning order's id, or the zero UUID while unattached.
func (d *Delivery) OrderID() kernel.UUID {
	if d.orderID == nil {
		return kernel.UUID{}
	}
	return *d.orderID
}

func (d *Delivery) Address() kernel.Address {
	return d.address
}

func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Start hands the shipment over to the carrier.
func (d *Delivery) Start() error {
	next, err := d.status.Start()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

// Complete marks the shipment as delivered.
func (d *Delivery) Complete() error {
	next, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

func (d *Delivery) canAttach(orderID kernel.UUID) error {
	if d.orderID != nil && !d.orderID.IsEqual(orderID) {
		return ErrDeliveryAlreadyAttached
	}
	return nil
}

func (d *Delivery) attach(orderID kernel.UUID) {
	d.orderID = &orderID
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
