package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ProgressOrdersCommandHandler orchestrates the automatic order progression.
// Each eligible order advances one step along its delivery type's sequence;
// terminal orders are skipped as no-ops. All updates occur within a single
// transaction, with status events published after commit.
//
// Example:
//
//	handler := NewProgressOrdersCommandHandler(uowFactory, publisher)
//	cmd, _ := NewProgressOrdersCommand(time.Now().Add(-30 * time.Second))
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order progression failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type ProgressOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewProgressOrdersCommandHandler creates a handler for automatic order
// progression. The publisher may be nil when no messaging backend is
// configured.
func NewProgressOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ProgressOrdersCommandHandler {
	return ProgressOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the progression command.
// Retrieves all active orders stale past the cutoff and advances each one
// step. An order that cannot advance (already terminal) is left untouched.
func (h *ProgressOrdersCommandHandler) Handle(ctx context.Context, cmd ProgressOrdersCommand) error {
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

	orders, err := orderRepo.GetAllActiveUpdatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	now := time.Now()
	advanced := make([]*order.Order, 0, len(orders))

	for _, aggregate := range orders {
		if !aggregate.Advance(now) {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		advanced = append(advanced, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		for _, aggregate := range advanced {
			_ = h.publisher.PublishStatusChanged(ctx, aggregate)
		}
	}

	return nil
}
