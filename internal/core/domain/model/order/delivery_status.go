package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus is the progress of a shipment.
//
//	Ready ──> InProgress ──> Complete
type DeliveryStatus int

const (
	DeliveryUnknown DeliveryStatus = iota
	DeliveryReady
	DeliveryInProgress
	DeliveryComplete
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:    "Unknown",
		DeliveryReady:      "Ready",
		DeliveryInProgress: "InProgress",
		DeliveryComplete:   "Complete",
	}
}

func (s DeliveryStatus) Validate() error {
	if s < DeliveryReady || s > DeliveryComplete {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseDeliveryStatus converts a persisted delivery status name back into a DeliveryStatus.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, str := range getDeliveryStatusStrings() {
		if str == s && status != DeliveryUnknown {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status is invalid", fmt.Errorf("%q is not a valid delivery status", s))
}

// Start moves Ready to InProgress.
func (s DeliveryStatus) Start() (DeliveryStatus, error) {
	if s != DeliveryReady {
		return DeliveryUnknown, errs.NewIllegalStateTransitionError(
			"delivery status", s.String(), DeliveryInProgress.String())
	}
	return DeliveryInProgress, nil
}

// Complete moves InProgress to Complete.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryInProgress {
		return DeliveryUnknown, errs.NewIllegalStateTransitionError(
			"delivery status", s.String(), DeliveryComplete.String())
	}
	return DeliveryComplete, nil
}
