package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// GroupVariant references one variant within an option group of a catalog item.
type GroupVariant struct {
	GroupID   string
	VariantID string
}

// OrderLine describes one requested line at checkout: a catalog item, a
// quantity, and the customer's variant choices. Single-mode choices are keyed
// by group id; multiple-mode choices are an ordered list because their order
// determines the order of the variant snapshots on the priced line.
type OrderLine struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SingleChoices       map[string]string
	MultiChoices        []GroupVariant
	SpecialInstructions string
}

// PlaceOrderCommand represents a checkout request: customer details, delivery
// preferences, payment method, and the cart contents to be priced.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "burger-palace", "Alex Wong", "+61 400 000 111",
//	    "", "", order.Pickup, order.Cash, "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shopID          string
	customerName    string
	customerPhone   string
	customerEmail   string
	deliveryAddress string
	deliveryType    order.DeliveryType
	paymentMethod   order.PaymentMethod
	notes           string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command with validation.
// Requires a valid order id, a shop id, customer name and phone, a valid
// delivery type and payment method, and at least one line with positive
// quantity. Delivery orders must also carry an address.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	shopID string,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	deliveryType order.DeliveryType,
	paymentMethod order.PaymentMethod,
	notes string,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerEmail: customerEmail,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopID(shopID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setDeliveryType(deliveryType),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	if deliveryType == order.Delivery && deliveryAddress == "" {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("delivery address")
	}
	cmd.deliveryAddress = deliveryAddress

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShopID returns the id of the shop the order is placed with.
func (c PlaceOrderCommand) ShopID() string {
	return c.shopID
}

// CustomerName returns the customer's name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's contact phone.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the customer's email, possibly empty.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// DeliveryAddress returns the delivery address; empty for pickup orders.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryType returns how the order should reach the customer.
func (c PlaceOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// PaymentMethod returns how the customer chose to pay.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the order notes, possibly empty.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the requested order lines in cart order.
func (c PlaceOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setShopID(shopID string) error {
	if shopID == "" {
		return errs.NewValueIsRequiredError("shop id")
	}
	c.shopID = shopID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = name
	return nil
}

func (c *PlaceOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.customerPhone = phone
	return nil
}

func (c *PlaceOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	c.deliveryType = deliveryType
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
