package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// ErrItemUnavailable is returned when a checkout references a catalog item
// that is currently not offered for sale.
var ErrItemUnavailable = errors.New("menu item is not available")

// PlaceOrderCommandHandler handles the business logic for checkout.
// Loads the referenced catalog items, prices each line through the Pricer,
// and persists the resulting order in "received" status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewPlaceOrderCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Order is now placed and progressing through the kitchen
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence; the publisher
// may be nil when no messaging backend is configured.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the checkout command.
// Each line is priced against the live catalog: required single-choice groups
// must be selected, unknown references are dropped, and variant snapshots are
// captured so that later catalog edits leave the order untouched.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	menuRepo := uow.MenuRepository()
	pricer := services.NewPricer()

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := h.priceLine(ctx, menuRepo, pricer, line)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ShopID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.DeliveryAddress(),
		cmd.DeliveryType(),
		items,
		order.DeliveryFeeFor(cmd.DeliveryType()),
		cmd.PaymentMethod(),
		cmd.Notes(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
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

// priceLine loads one catalog item and converts the requested line into a
// priced order line with variant snapshots.
func (h *PlaceOrderCommandHandler) priceLine(
	ctx context.Context,
	menuRepo ports.MenuRepository,
	pricer services.Pricer,
	line OrderLine,
) (order.Item, error) {
	item, err := menuRepo.Get(ctx, line.MenuItemID)
	if err != nil {
		return order.Item{}, err
	}

	if !item.Available() {
		return order.Item{}, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name())
	}

	selection := menu.NewSelection()
	for groupID, variantID := range line.SingleChoices {
		selection.Choose(groupID, variantID)
	}
	for _, choice := range line.MultiChoices {
		selection.Add(choice.GroupID, choice.VariantID)
	}

	if err = pricer.ValidateSelection(item, selection); err != nil {
		return order.Item{}, err
	}

	quote, err := pricer.PriceLineItem(item, selection, line.Quantity)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(
		item.ID(),
		item.Name(),
		item.BasePrice(),
		quote.UnitPrice,
		quote.Quantity,
		quote.Variants,
		line.SpecialInstructions,
	)
}
