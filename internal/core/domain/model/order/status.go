package order

import (
	"fmt"

	"withus/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Every order starts as Pending. Administrators may move an order to any
// other valid status; the transition graph is deliberately permissive (for
// example, a completed order can be reopened) and the only hard rule lives in
// Order.ChangeStatus: cancelling requires a reason, and leaving the cancelled
// state clears it. Completed and Cancelled are terminal under the intended
// business flow but this is not enforced.
type Status int

const (
	// Unknown catches uninitialized Status values; it is never valid.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Confirmed means an administrator accepted the order.
	Confirmed

	// InProgress means the order is being prepared or delivered.
	InProgress

	// Completed means the order was fulfilled.
	Completed

	// Cancelled means an administrator cancelled the order; a cancellation
	// reason is always recorded alongside.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
