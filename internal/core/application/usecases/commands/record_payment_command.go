package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a settlement update from the payment
// collaborator: an online payment confirmed, abandoned, or refunded.
//
// Example:
//
//	cmd, err := NewRecordPaymentCommand(orderID, order.PaymentPaid)
//	if err != nil {
//	    return fmt.Errorf("invalid payment update: %w", err)
//	}
//
//	handler := NewRecordPaymentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment update rejected: %w", err)
//	}
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	next    order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment update command with validation.
func NewRecordPaymentCommand(orderID kernel.UUID, next order.PaymentStatus) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the id of the order whose payment settles.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested payment status.
func (c RecordPaymentCommand) Next() order.PaymentStatus {
	return c.next
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setNext(next order.PaymentStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
