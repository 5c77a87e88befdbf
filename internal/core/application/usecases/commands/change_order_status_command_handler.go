package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ErrDriverNotAvailable is returned when a dispatch names a driver who is
// off the roster.
var ErrDriverNotAvailable = errors.New("driver is not available")

// ChangeOrderStatusCommandHandler orchestrates manual status transitions.
// Delegates legality to the order aggregate: requests outside the transition
// table are rejected, never coerced into the nearest legal state.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.OutForDelivery, &driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrIllegalTransition):
//	    log.Println("Transition not allowed from current status")
//	case errors.Is(err, ErrDriverNotAvailable):
//	    log.Println("Driver is off the roster")
//	case err != nil:
//	    log.Printf("Status change failed: %v", err)
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for manual status
// transitions. The publisher may be nil when no messaging backend is
// configured.
func NewChangeOrderStatusCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// When a driver id accompanies the request, the driver is verified against
// the roster and assigned before the transition. Cancellation routes through
// the aggregate's Cancel so the payment settles alongside.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()

	if cmd.DriverID() != nil {
		assigned, driverErr := uow.DriverRepository().Get(ctx, *cmd.DriverID())
		if driverErr != nil {
			return driverErr
		}
		if !assigned.Active() {
			return fmt.Errorf("%w: %s", ErrDriverNotAvailable, assigned.Name())
		}
		if err = aggregate.AssignDriver(assigned.ID(), now); err != nil {
			return err
		}
	}

	if cmd.Next() == order.Cancelled {
		err = aggregate.Cancel(now)
	} else {
		err = aggregate.TransitionTo(cmd.Next(), now)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishStatusChanged(ctx, aggregate)
	}

	return nil
}
