package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// DeliveryType determines how an order reaches the customer and which
// status sequence applies to it.
type DeliveryType int

const (
	// UnknownDeliveryType represents an invalid or undefined delivery type.
	UnknownDeliveryType DeliveryType = iota

	// Pickup orders are collected in person; out_for_delivery is skipped.
	Pickup

	// Delivery orders pass through out_for_delivery before completion.
	Delivery
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		UnknownDeliveryType: "unknown",
		Pickup:              "pickup",
		Delivery:            "delivery",
	}
}

// Validate checks if the DeliveryType value is valid.
func (t DeliveryType) Validate() error {
	if t != Pickup && t != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery type is invalid",
			fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

// String returns the lowercase name of the delivery type, as used on the
// wire and in the database. Returns "unknown" for invalid values.
func (t DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// DeliveryTypeFromString parses a delivery type from its wire representation.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	switch s {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	default:
		return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause("delivery type is invalid",
			fmt.Errorf("%q is not a valid delivery type", s))
	}
}

// Status represents the lifecycle state of an order.
// It implements a state machine with a linear progression parameterized
// by delivery type, plus a terminal cancellation side-branch:
//
//	Received ──> Preparing ──> Ready ──> OutForDelivery ──> Completed
//	    │            │                      (delivery only)
//	    └────────────┴──> Cancelled
//
// Pickup orders skip OutForDelivery entirely: Ready advances straight to
// Completed. Completed and Cancelled are terminal.
//
// Status is a value object that exposes the legal progression (Next) and the
// legal manual transitions (ManualTransitions); the Order aggregate enforces
// them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned at order creation.
	Received

	// Preparing indicates the kitchen has accepted the order.
	Preparing

	// Ready indicates the order is ready for pickup or dispatch.
	Ready

	// OutForDelivery indicates a driver has taken the order.
	// Only valid for Delivery orders.
	OutForDelivery

	// Completed indicates the order was handed over. Terminal.
	Completed

	// Cancelled indicates the order was abandoned before preparation
	// finished. Terminal; reachable from Received and Preparing only.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Received:       "received",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:       "received",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// progression returns the automatic status sequence for a delivery type.
func progression(deliveryType DeliveryType) []Status {
	if deliveryType == Delivery {
		return []Status{Received, Preparing, Ready, OutForDelivery, Completed}
	}
	return []Status{Received, Preparing, Ready, Completed}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase snake_case name of the status, as used on
// the wire and in the database. Returns "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(str string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the following status in the automatic progression for the
// given delivery type. Returns (Unknown, false) when the current status is
// terminal or not part of the sequence; callers driving best-effort
// background progression treat that as a no-op rather than an error.
func (s Status) Next(deliveryType DeliveryType) (Status, bool) {
	seq := progression(deliveryType)
	for i, status := range seq {
		if status == s && i+1 < len(seq) {
			return seq[i+1], true
		}
	}
	return Unknown, false
}

// ManualTransitions returns the statuses that shop staff or drivers may
// request from the current status, for the given delivery type:
//
//	received          -> preparing, cancelled
//	preparing         -> ready
//	ready (pickup)    -> completed
//	ready (delivery)  -> out_for_delivery
//	out_for_delivery  -> completed
//	terminal          -> (none)
//
// The returned slice states what is legal; enforcement belongs to the
// Order aggregate.
func (s Status) ManualTransitions(deliveryType DeliveryType) []Status {
	switch s {
	case Received:
		return []Status{Preparing, Cancelled}
	case Preparing:
		return []Status{Ready}
	case Ready:
		if deliveryType == Delivery {
			return []Status{OutForDelivery}
		}
		return []Status{Completed}
	case OutForDelivery:
		if deliveryType == Delivery {
			return []Status{Completed}
		}
		return nil
	default:
		return nil
	}
}

// CanTransitionTo reports whether a manual transition to next is legal
// from the current status for the given delivery type.
func (s Status) CanTransitionTo(next Status, deliveryType DeliveryType) bool {
	for _, candidate := range s.ManualTransitions(deliveryType) {
		if candidate == next {
			return true
		}
	}
	return false
}
