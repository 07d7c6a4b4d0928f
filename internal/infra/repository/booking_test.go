//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/pgconv"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

type MockActivityLogWriteQueries struct {
	mock.Mock
}

func (m *MockActivityLogWriteQueries) CreateActivityLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityLogParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	qty, err := cart.NewQuantity(2)
	require.NoError(t, err)
	now := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	ret := "2025-07-10"

	b, err := booking.New(booking.NewParams{
		UserID:      uuid.New(),
		Reference:   "BK20250704000001",
		Items:       []booking.LineItem{booking.NewLineItem(uuid.New(), cart.ServiceCar, "Toyota Corolla", qty, decimal.RequireFromString("45.50"), nil, nil)},
		BookingDate: now,
		ReturnDate:  &ret,
		Now:         now,
	})
	require.NoError(t, err)
	return b
}

func TestBookingCreate(t *testing.T) {
	b := newTestBooking(t)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
			total, err := pgconv.DecimalFromNumeric(p.TotalAmount)
			return err == nil &&
				total.Equal(decimal.RequireFromString("91")) &&
				p.BookingReference == "BK20250704000001" &&
				p.ServiceType == "car" &&
				p.BookingStatus == "pending" &&
				p.PaymentMethod == "pending" &&
				p.ReturnDate.String == "2025-07-10" &&
				!p.SpecialRequests.Valid
		})).Return(sqlc.Bookings{}, nil)

		err := NewBookingRepository(mockQueries).Create(context.Background(), nil, b)
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("reference collision", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23505"})

		err := NewBookingRepository(mockQueries).Create(context.Background(), nil, b)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestBookingUpdateStatus(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("UpdateBookingStatus", mock.Anything, mock.Anything,
		sqlc.UpdateBookingStatusParams{ID: id, BookingStatus: "cancelled"}).Return(nil)

	err := NewBookingRepository(mockQueries).UpdateStatus(context.Background(), nil, id, booking.StatusCancelled)
	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestActivityLogRecord(t *testing.T) {
	userID, bookingID := uuid.New(), uuid.New()

	t.Run("詳細はJSONで保存", func(t *testing.T) {
		mockQueries := new(MockActivityLogWriteQueries)
		mockQueries.On("CreateActivityLog", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateActivityLogParams) bool {
			return p.Action == shared.ActionBookingCreated &&
				p.UserID.Valid && p.EntityID.Valid &&
				string(p.Details) == `{"booking_reference":"BK20250704000001"}`
		})).Return(nil)

		err := NewActivityLogRepository(mockQueries).Record(context.Background(), nil, shared.ActivityEntry{
			UserID:     &userID,
			Action:     shared.ActionBookingCreated,
			EntityType: shared.EntityBooking,
			EntityID:   &bookingID,
			Details:    map[string]any{"booking_reference": "BK20250704000001"},
		})
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("詳細なしは空オブジェクト", func(t *testing.T) {
		mockQueries := new(MockActivityLogWriteQueries)
		mockQueries.On("CreateActivityLog", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateActivityLogParams) bool {
			return string(p.Details) == `{}` && !p.UserID.Valid
		})).Return(nil)

		err := NewActivityLogRepository(mockQueries).Record(context.Background(), nil, shared.ActivityEntry{
			Action:     shared.ActionBookingCancelled,
			EntityType: shared.EntityBooking,
		})
		require.NoError(t, err)
	})
}
