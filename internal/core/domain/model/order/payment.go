package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay at checkout.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	// Online payments are settled through the payment gateway before handover.
	Online

	// Cash payments are settled on pickup or delivery.
	Cash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "unknown",
		Online:               "online",
		Cash:                 "cash",
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if m != Online && m != Cash {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the lowercase name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethodFromString parses a payment method from its wire representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "online":
		return Online, nil
	case "cash":
		return Cash, nil
	default:
		return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// PaymentStatus tracks the settlement state of an order's payment,
// maintained by the payment collaborator out of band from the order
// lifecycle. The lifecycle is indifferent to it except that cash orders
// are marked paid when a driver or the shop completes the handover.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined payment status.
	UnknownPaymentStatus PaymentStatus = iota

	PaymentPending
	PaymentPaid
	PaymentRefunded
	PaymentCancelled
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPaymentStatus: "unknown",
		PaymentPending:       "pending",
		PaymentPaid:          "paid",
		PaymentRefunded:      "refunded",
		PaymentCancelled:     "cancelled",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // UnknownPaymentStatus is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentPaid:      "paid",
		PaymentRefunded:  "refunded",
		PaymentCancelled: "cancelled",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatusFromString parses a payment status from its wire representation.
func PaymentStatusFromString(str string) (PaymentStatus, error) {
	for status, s := range getValidPaymentStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", str))
}
