package queries

import (
	"context"

	"aerotrav/internal/domain/recommendation"
	"aerotrav/internal/infra"
	"aerotrav/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]BookingView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	ListBookings(ctx context.Context, userID uuid.UUID, page, limit int) (*BookingListView, error)
	GetBooking(ctx context.Context, userID, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, userID uuid.UUID, page, limit int) (*BookingListView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	page, limit = recommendation.NormalizePage(page, limit)

	total, err := q.readStore.CountByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// page-1 > total/limit means past the end; skip the query.
	bookings := []BookingView{}
	if page-1 <= total/limit {
		bookings, err = q.readStore.ListByUser(ctx, userID, limit, (page-1)*limit)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	pages := (total + limit - 1) / limit
	return &BookingListView{
		Bookings: bookings,
		Pagination: recommendation.Pagination{
			Page:    page,
			Limit:   limit,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}, nil
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, userID, id uuid.UUID) (*BookingView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	b, err := q.readStore.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}
