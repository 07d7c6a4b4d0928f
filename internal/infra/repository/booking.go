package repository

import (
	"context"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	details, err := booking.MarshalItems(b.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking items", err)
	}

	_, err = r.queries.CreateBooking(ctx, tx, sqlc.CreateBookingParams{
		ID:               b.ID(),
		UserID:           b.UserID(),
		BookingReference: b.Reference(),
		ServiceType:      b.ServiceType(),
		Details:          details,
		TotalAmount:      pgconv.DecimalToNumeric(b.Total()),
		PaymentStatus:    string(b.PaymentStatus()),
		BookingStatus:    string(b.Status()),
		BookingDate:      pgconv.DateToPgtype(b.BookingDate()),
		ReturnDate:       pgconv.StringPtrToPgtype(b.ReturnDate()),
		SpecialRequests:  pgconv.StringPtrToPgtype(b.SpecialRequests()),
		PaymentMethod:    b.PaymentMethod(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, status booking.Status) error {
	err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:            bookingID,
		BookingStatus: string(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
