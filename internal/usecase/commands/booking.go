package commands

import (
	"context"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/infra"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errs.New("booking not found")
	ErrBookingNotCancellable = errs.New("booking cannot be cancelled")
	ErrBookingUpdateFailed   = errs.New("failed to update booking")
)

type BookingCommands interface {
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	activity ActivityRecorder
}

func NewBookingCommands(uow shared.UnitOfWork, activity ActivityRecorder) BookingCommands {
	return &bookingCommandsImpl{uow: uow, activity: activity}
}

// Cancel moves a non-terminal booking owned by userID to cancelled.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	var previous booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().BookingStatusForUpdate(ctx, userID, bookingID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return rerr
		}
		if cerr := booking.EnsureCancellable(snap.Status); cerr != nil {
			return errs.Mark(cerr, ErrBookingNotCancellable)
		}
		previous = snap.Status
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusCancelled)
	})
	if err != nil {
		if errs.Is(err, ErrBookingNotFound) || errs.Is(err, ErrBookingNotCancellable) {
			return err
		}
		return errs.Mark(err, ErrBookingUpdateFailed)
	}

	uc.activity.Record(ctx, shared.ActivityEntry{
		UserID:     &userID,
		Action:     shared.ActionBookingCancelled,
		EntityType: shared.EntityBooking,
		EntityID:   &bookingID,
		Details:    map[string]any{"previous_status": previous.String()},
	})
	return nil
}
