package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is where a member lives and where a delivery is shipped to.
// It is an immutable value object; two addresses with the same parts are equal.
type Address struct { //nolint:recvcheck //using for validation
	city    string
	street  string
	zipcode string
	guard   guard.ConstructorGuard
}

// NewAddress trims and validates every part. All parts are required.
func NewAddress(city, street, zipcode string) (Address, error) {
	address := Address{
		city:    strings.TrimSpace(city),
		street:  strings.TrimSpace(street),
		zipcode: strings.TrimSpace(zipcode),
		guard:   guard.NewConstructorGuard(),
	}

	var err error
	if address.city == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if address.street == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("street"))
	}
	if address.zipcode == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("zipcode"))
	}
	if err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate reports whether the value was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Zipcode() string {
	return a.zipcode
}

// IsEqual compares addresses part by part.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zipcode == other.zipcode
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.street, a.city, a.zipcode)
}
