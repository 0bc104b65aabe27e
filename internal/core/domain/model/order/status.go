package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Ordered ──> Cancelled
//
// Cancelled is terminal.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	Ordered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Ordered:   "Ordered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that s is Ordered or Cancelled.
func (s Status) Validate() error {
	if s != Ordered && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a persisted status name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Cancel returns Cancelled for an Ordered status.
func (s Status) Cancel() (Status, error) {
	if s != Ordered {
		return Unknown, errs.NewIllegalStateTransitionError("order status", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
