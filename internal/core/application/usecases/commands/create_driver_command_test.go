package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(id, "Sam Patel", "+61 400 111 222")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.DriverID())
	assert.Equal(t, "Sam Patel", cmd.Name())
	assert.Equal(t, "+61 400 111 222", cmd.Phone())
}

func TestNewCreateDriverCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDriverCommand(kernel.NewUUID(), "Sam Patel", "+61 400 111 222")

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDriverCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDriverCommand{} // not constructed properly
	factory := new(MockDriverUoWFactory)
	h := commands.NewCreateDriverCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
