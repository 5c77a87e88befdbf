package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrProgressOrdersCommandIsNotConstructed = errors.New(
	"ProgressOrdersCommand must be created via NewProgressOrdersCommand constructor",
)

// ProgressOrdersCommand triggers an automatic advance of every active order
// that has sat in its current status since before the cutoff. This batch
// operation simulates the kitchen and courier moving orders along.
//
// Example:
//
//	cmd, _ := NewProgressOrdersCommand(time.Now().Add(-30 * time.Second))
//	handler := NewProgressOrdersCommandHandler(uowFactory, publisher)
//
//	// Run periodically to keep orders moving
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Progression failed: %v", err)
//	}
type ProgressOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewProgressOrdersCommand creates a progression command for orders whose
// last status change happened strictly before the cutoff.
func NewProgressOrdersCommand(cutoff time.Time) (ProgressOrdersCommand, error) {
	cmd := ProgressOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cutoff.IsZero() {
		return ProgressOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	cmd.cutoff = cutoff

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProgressOrdersCommandIsNotConstructed if validation fails.
func (c ProgressOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrdersCommandIsNotConstructed)
}

// Cutoff returns the staleness threshold for the progression pass.
func (c ProgressOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
