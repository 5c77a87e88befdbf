package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/pkg/errs"
)

// SaveMenuItemCommandHandler handles administrative catalog edits.
// Performs an upsert: a new item is added, an existing one replaced wholesale.
type SaveMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewSaveMenuItemCommandHandler creates a handler for catalog edits.
func NewSaveMenuItemCommandHandler(uowFactory MenuUoWFactory) SaveMenuItemCommandHandler {
	return SaveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog edit command.
func (h *SaveMenuItemCommandHandler) Handle(ctx context.Context, cmd SaveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := menu.NewItem(
		cmd.ItemID(),
		cmd.Name(),
		cmd.Description(),
		cmd.BasePrice(),
		cmd.Category(),
		cmd.Available(),
		cmd.Options(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	_, err = menuRepo.Get(ctx, cmd.ItemID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		err = menuRepo.Add(ctx, item)
	case err == nil:
		err = menuRepo.Update(ctx, item)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
