package order

import (
	"fmt"

	"withus/internal/pkg/errs"
)

// ServiceType distinguishes how an order is fulfilled. Delivery orders
// require a delivery address; in-person orders may carry a scheduled time.
type ServiceType string

const (
	// Delivery means the order is shipped to a delivery address.
	Delivery ServiceType = "delivery"

	// InPerson means the customer collects the order, optionally at a
	// scheduled time.
	InPerson ServiceType = "in_person"
)

// ServiceTypeFromString parses the wire representation of a service type.
func ServiceTypeFromString(s string) (ServiceType, error) {
	st := ServiceType(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate rejects any value outside the closed service type set.
func (st ServiceType) Validate() error {
	switch st {
	case Delivery, InPerson:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%q is not a valid service type", string(st)))
	}
}

func (st ServiceType) String() string {
	return string(st)
}
