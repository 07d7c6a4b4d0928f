package readstore

import (
	"context"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/pgconv"
	"aerotrav/internal/usecase/queries"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.Bookings, error)
	CountBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	GetBookingByIDForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIDForUserParams) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByUser returns bookings newest first.
func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, sqlc.ListBookingsByUserParams{
		UserID: userID,
		Limit:  int32(limit),  // #nosec G115 -- capped by recommendation.MaxLimit
		Offset: int32(offset), // #nosec G115 -- derived from a capped page
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	out := make([]queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking "+row.BookingReference, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *BookingReadStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.queries.CountBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return int(n), nil
}

// FindByID only matches bookings owned by userID.
func (r *BookingReadStore) FindByID(ctx context.Context, userID, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByIDForUser(ctx, r.db, sqlc.GetBookingByIDForUserParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	v, err := toBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking "+row.BookingReference, err)
	}
	return &v, nil
}

func toBookingView(row sqlc.Bookings) (queries.BookingView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return queries.BookingView{}, err
	}
	items, err := booking.UnmarshalItems(row.Details)
	if err != nil {
		return queries.BookingView{}, err
	}

	return queries.BookingView{
		ID:               row.ID,
		BookingReference: row.BookingReference,
		ServiceType:      row.ServiceType,
		Items:            items,
		TotalAmount:      total,
		PaymentStatus:    row.PaymentStatus,
		BookingStatus:    row.BookingStatus,
		BookingDate:      booking.FormatDate(pgconv.DateFromPgtype(row.BookingDate)),
		ReturnDate:       pgconv.StringPtrFromPgtype(row.ReturnDate),
		SpecialRequests:  pgconv.StringPtrFromPgtype(row.SpecialRequests),
		PaymentMethod:    row.PaymentMethod,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

type BookingCommandQueries interface {
	BookingReferenceExists(ctx context.Context, db sqlc.DBTX, bookingReference string) (bool, error)
	GetBookingStatusForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingStatusForUpdateParams) (sqlc.GetBookingStatusForUpdateRow, error)
}

// BookingStatusStore serves command-side booking reads inside a transaction.
type BookingStatusStore struct {
	queries BookingCommandQueries
	db      sqlc.DBTX
}

func NewBookingStatusStore(queries BookingCommandQueries, db sqlc.DBTX) *BookingStatusStore {
	return &BookingStatusStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingStatusStore) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	exists, err := r.queries.BookingReferenceExists(ctx, r.db, reference)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking reference", err)
	}
	return exists, nil
}

// StatusForUpdate locks the booking row; other users' bookings are reported as not found.
func (r *BookingStatusStore) StatusForUpdate(ctx context.Context, userID, bookingID uuid.UUID) (*shared.BookingStatusSnapshot, error) {
	row, err := r.queries.GetBookingStatusForUpdate(ctx, r.db, sqlc.GetBookingStatusForUpdateParams{ID: bookingID, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return &shared.BookingStatusSnapshot{
		ID:            row.ID,
		UserID:        row.UserID,
		Status:        booking.Status(row.BookingStatus),
		PaymentStatus: booking.PaymentStatus(row.PaymentStatus),
	}, nil
}
