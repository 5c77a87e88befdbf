package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/driver"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, order.Pickup)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Preparing, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DispatchWithDriver(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Delivery, order.Ready)
	assigned, err := driver.NewDriver(kernel.NewUUID(), "Sam Patel", "+61 400 111 222")
	require.NoError(t, err)
	driverID := assigned.ID()

	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.OutForDelivery, &driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driverID).Return(assigned, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, aggregate.Status())
	require.NotNil(t, aggregate.Driver())
	assert.True(t, aggregate.Driver().IsEqual(driverID))
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InactiveDriver(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Delivery, order.Ready)
	assigned, err := driver.RestoreDriver(kernel.NewUUID(), "Sam Patel", "+61 400 111 222", false)
	require.NoError(t, err)
	driverID := assigned.ID()

	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.OutForDelivery, &driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driverID).Return(assigned, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverNotAvailable)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelSettlesPayment(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, order.Pickup)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, order.PaymentCancelled, aggregate.PaymentStatus())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, order.Pickup)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Completed, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrIllegalTransition)
	assert.Equal(t, order.Received, aggregate.Status())
	uow.AssertExpectations(t)
}
