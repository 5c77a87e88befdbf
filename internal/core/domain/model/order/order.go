package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIllegalTransition is returned when a manual status transition outside
	// the legal transition table is requested. Such requests are always
	// rejected, never silently coerced.
	ErrIllegalTransition = errors.New("status transition is not allowed")

	// ErrTerminalState is returned when a manual transition is requested from
	// a completed or cancelled order.
	ErrTerminalState = errors.New("order is in a terminal status")

	// ErrIllegalPaymentTransition is returned when a payment status change
	// outside the legal settlement flow is requested.
	ErrIllegalPaymentTransition = errors.New("payment status transition is not allowed")
)

// Order represents a placed order in the storefront. It is the aggregate root
// that manages the order lifecycle from checkout through preparation and
// handover to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a shop id
//   - Must have at least one order line
//   - Total always equals subtotal plus delivery fee
//   - Delivery orders must carry a delivery address
//   - Status transitions follow the lifecycle transition table
//   - Status and payment status are the only fields mutated after creation
//
// Orders are never deleted; terminal orders simply stop transitioning.
type Order struct {
	id              kernel.UUID
	shopID          string
	customerName    string
	customerPhone   string
	customerEmail   string
	deliveryAddress string
	deliveryType    DeliveryType
	items           []Item
	subtotal        decimal.Decimal
	deliveryFee     decimal.Decimal
	total           decimal.Decimal
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	status          Status
	driverID        *kernel.UUID
	notes           string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order at checkout time. The subtotal is computed
// from the line totals, the total from subtotal plus delivery fee. The order
// starts in Received status with payment Pending; the payment collaborator
// settles online payments out of band via RecordPayment.
func NewOrder(
	id kernel.UUID,
	shopID string,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	deliveryType DeliveryType,
	items []Item,
	deliveryFee decimal.Decimal,
	paymentMethod PaymentMethod,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		customerEmail: customerEmail,
		notes:         notes,
		status:        Received,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryType(deliveryType),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if deliveryType == Delivery && deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress

	o.deliveryFee = deliveryFee
	o.subtotal = decimal.Zero
	for _, item := range o.items {
		o.subtotal = o.subtotal.Add(item.LineTotal())
	}
	o.total = o.subtotal.Add(o.deliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, trusting the stored
// monetary figures, statuses, and timestamps.
func RestoreOrder(
	id kernel.UUID,
	shopID string,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	deliveryType DeliveryType,
	items []Item,
	subtotal decimal.Decimal,
	deliveryFee decimal.Decimal,
	total decimal.Decimal,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	driverID *kernel.UUID,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customerEmail:   customerEmail,
		deliveryAddress: deliveryAddress,
		subtotal:        subtotal,
		deliveryFee:     deliveryFee,
		total:           total,
		notes:           notes,
		driverID:        driverID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryType(deliveryType),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.paymentStatus = paymentStatus
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopID returns the id of the shop the order was placed with.
func (o *Order) ShopID() string {
	return o.shopID
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's contact phone.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerEmail returns the customer's email, possibly empty.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// DeliveryAddress returns the delivery address; empty for pickup orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryType returns how the order reaches the customer.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// Items returns the order lines in checkout order.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// DeliveryFee returns the delivery fee applied at checkout.
func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state of the payment.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's id, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Notes returns the order notes, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order to the next status in the automatic progression
// for its delivery type. Terminal orders are left untouched and reported
// as not advanced; background progression treats that as a no-op, so this
// method never fails.
func (o *Order) Advance(now time.Time) bool {
	next, ok := o.status.Next(o.deliveryType)
	if !ok {
		return false
	}

	o.applyStatus(next, now)
	return true
}

// TransitionTo performs a manual status transition requested by shop staff
// or a driver. The request must appear in the legal transition table for
// the order's current status and delivery type.
//
// Returns ErrTerminalState for completed/cancelled orders and
// ErrIllegalTransition for any other request outside the table.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, o.status)
	}

	if !o.status.CanTransitionTo(next, o.deliveryType) {
		return fmt.Errorf("%w: %s -> %s (%s)", ErrIllegalTransition, o.status, next, o.deliveryType)
	}

	if next == OutForDelivery && o.driverID == nil {
		return errs.NewValueIsRequiredError("driver must be assigned before dispatch")
	}

	o.applyStatus(next, now)
	return nil
}

// Cancel abandons the order. Cancellation is only possible before
// preparation finishes, i.e. from Received or Preparing. A pending payment
// is cancelled alongside; a settled one is marked for refund.
func (o *Order) Cancel(now time.Time) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, o.status)
	}

	if o.status != Received && o.status != Preparing {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.status, Cancelled)
	}

	switch o.paymentStatus {
	case PaymentPending:
		o.paymentStatus = PaymentCancelled
	case PaymentPaid:
		o.paymentStatus = PaymentRefunded
	}

	o.applyStatus(Cancelled, now)
	return nil
}

// AssignDriver assigns the order to a driver ahead of dispatch.
// Only delivery orders in Ready status accept a driver; reassignment
// while still Ready is allowed.
func (o *Order) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.deliveryType != Delivery {
		return fmt.Errorf("%w: cannot assign a driver to a %s order", ErrIllegalTransition, o.deliveryType)
	}

	if o.status != Ready {
		return fmt.Errorf("%w: driver assignment requires %s status, order is %s", ErrIllegalTransition, Ready, o.status)
	}

	o.driverID = &driverID
	o.updatedAt = now
	return nil
}

// RecordPayment applies a settlement update from the payment collaborator.
// Legal flows: pending -> paid, pending -> cancelled, paid -> refunded.
func (o *Order) RecordPayment(next PaymentStatus, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	legal := map[PaymentStatus][]PaymentStatus{
		PaymentPending: {PaymentPaid, PaymentCancelled},
		PaymentPaid:    {PaymentRefunded},
	}

	for _, candidate := range legal[o.paymentStatus] {
		if candidate == next {
			o.paymentStatus = next
			o.updatedAt = now
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrIllegalPaymentTransition, o.paymentStatus, next)
}

// applyStatus moves to the next status and settles cash on handover:
// a cash order still pending payment is marked paid when completed.
func (o *Order) applyStatus(next Status, now time.Time) {
	o.status = next
	o.updatedAt = now

	if next == Completed && o.paymentMethod == Cash && o.paymentStatus == PaymentPending {
		o.paymentStatus = PaymentPaid
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopID(shopID string) error {
	if shopID == "" {
		return errs.NewValueIsRequiredError("shop id")
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
