package commands_test

import (
	"testing"

	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/core/domain/model/rider"
	"campusdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type acceptFixture struct {
	cmd       commands.AcceptOrderCommand
	rider     *rider.Rider
	uow       *MockUoW
	factory   *MockUoWFactory
	orderRepo *MockOrderRepository
	riderRepo *MockRiderRepository
}

func newAcceptFixture(t *testing.T, active bool) acceptFixture {
	t.Helper()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), riderID)
	require.NoError(t, err)
	r, err := rider.NewRider(riderID, "Ravi", "+911234567890", active)
	require.NoError(t, err)

	f := acceptFixture{
		cmd:       cmd,
		rider:     r,
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		orderRepo: new(MockOrderRepository),
		riderRepo: new(MockRiderRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func (f acceptFixture) expectClaimStart(t *testing.T) {
	t.Helper()
	ctx := t.Context()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("RiderRepository").Return(f.riderRepo).Once()
	f.riderRepo.On("Get", mock.Anything, f.cmd.RiderID()).Return(f.rider, nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newAcceptFixture(t, true)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RiderRepository").Return(f.riderRepo).Once(),
		f.riderRepo.On("Get", mock.Anything, f.cmd.RiderID()).Return(f.rider, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("TryTransition", mock.Anything, f.cmd.OrderID(), order.Confirmed, order.AssignedRider).
			Return(true, nil).Once(),
		f.orderRepo.On("AppendEvent", mock.Anything, mock.MatchedBy(func(e order.Event) bool {
			return e.To() == order.AssignedRider && e.Actor().ID().IsEqual(f.cmd.RiderID())
		})).Return(nil).Once(),
		f.orderRepo.On("AddAssignment", mock.Anything, mock.MatchedBy(func(a order.Assignment) bool {
			return a.OrderID().IsEqual(f.cmd.OrderID()) && a.RiderID().IsEqual(f.cmd.RiderID())
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAcceptOrderCommandHandler(f.factory)
	require.NoError(t, h.Handle(ctx, f.cmd))
	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
	f.riderRepo.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_RiderChecks(t *testing.T) {
	t.Run("unknown rider", func(t *testing.T) {
		ctx := t.Context()
		f := newAcceptFixture(t, true)
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("RiderRepository").Return(f.riderRepo).Once()
		f.riderRepo.On("Get", mock.Anything, f.cmd.RiderID()).
			Return(nil, errs.NewObjectNotFoundError("rider", f.cmd.RiderID())).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewAcceptOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		require.ErrorIs(t, err, commands.ErrRiderNotFound)
		f.uow.AssertExpectations(t)
	})

	t.Run("inactive rider", func(t *testing.T) {
		ctx := t.Context()
		f := newAcceptFixture(t, false)
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("RiderRepository").Return(f.riderRepo).Once()
		f.riderRepo.On("Get", mock.Anything, f.cmd.RiderID()).Return(f.rider, nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewAcceptOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		require.ErrorIs(t, err, commands.ErrRiderInactive)
		f.orderRepo.AssertNotCalled(t, "TryTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAcceptOrderCommandHandler_Handle_LostClaim(t *testing.T) {
	t.Run("status already moved", func(t *testing.T) {
		ctx := t.Context()
		f := newAcceptFixture(t, true)
		f.expectClaimStart(t)
		f.orderRepo.On("TryTransition", mock.Anything, f.cmd.OrderID(), order.Confirmed, order.AssignedRider).
			Return(false, nil).Once()
		f.orderRepo.On("GetStatus", mock.Anything, f.cmd.OrderID()).Return(order.AssignedRider, nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewAcceptOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
		f.orderRepo.AssertNotCalled(t, "AddAssignment", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", ctx)
	})

	for _, status := range []order.Status{order.Created, order.Cancelled} {
		t.Run("order is "+status.String(), func(t *testing.T) {
			ctx := t.Context()
			f := newAcceptFixture(t, true)
			f.expectClaimStart(t)
			f.orderRepo.On("TryTransition", mock.Anything, f.cmd.OrderID(), order.Confirmed, order.AssignedRider).
				Return(false, nil).Once()
			f.orderRepo.On("GetStatus", mock.Anything, f.cmd.OrderID()).Return(status, nil).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()

			err := commands.NewAcceptOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

			require.ErrorIs(t, err, order.ErrOrderStatusInvalid)
			assert.NotErrorIs(t, err, order.ErrOrderAlreadyAssigned)
			f.orderRepo.AssertNotCalled(t, "AddAssignment", mock.Anything, mock.Anything)
		})
	}

	t.Run("order does not exist", func(t *testing.T) {
		ctx := t.Context()
		f := newAcceptFixture(t, true)
		f.expectClaimStart(t)
		f.orderRepo.On("TryTransition", mock.Anything, f.cmd.OrderID(), order.Confirmed, order.AssignedRider).
			Return(false, nil).Once()
		f.orderRepo.On("GetStatus", mock.Anything, f.cmd.OrderID()).
			Return(order.Unknown, errs.NewObjectNotFoundError("order", f.cmd.OrderID())).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewAcceptOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("assignment row already taken", func(t *testing.T) {
		ctx := t.Context()
		f := newAcceptFixture(t, true)
		f.expectClaimStart(t)
		f.orderRepo.On("TryTransition", mock.Anything, f.cmd.OrderID(), order.Confirmed, order.AssignedRider).
			Return(true, nil).Once()
		f.orderRepo.On("AppendEvent", mock.Anything, mock.Anything).Return(nil).Once()
		f.orderRepo.On("AddAssignment", mock.Anything, mock.Anything).Return(order.ErrOrderAlreadyAssigned).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewAcceptOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
		f.uow.AssertNotCalled(t, "Commit", ctx)
		assert.True(t, f.uow.AssertExpectations(t))
	})
}
