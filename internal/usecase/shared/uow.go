package shared

import (
	"context"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/cart"
	"aerotrav/internal/domain/preference"
	"aerotrav/internal/domain/user"
	sqlc "aerotrav/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations, retried on serialization failure unless WithoutRetry is given
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error, opts ...TxOption) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type TxConfig struct {
	Retry bool
}

type TxOption func(*TxConfig)

// WithoutRetry runs the transaction exactly once.
func WithoutRetry() TxOption {
	return func(c *TxConfig) { c.Retry = false }
}

func ApplyTxOptions(opts ...TxOption) TxConfig {
	cfg := TxConfig{Retry: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type Tx interface {
	Users() UserRepository
	Preferences() PreferenceRepository
	Carts() CartRepository
	Bookings() BookingRepository
	ActivityLogs() ActivityLogRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceQuote(ctx context.Context, serviceType cart.ServiceType, serviceID uuid.UUID) (*ServiceQuote, error)
	CartItems(ctx context.Context, userID uuid.UUID) ([]CartLine, error)
	CartItemByService(ctx context.Context, userID, serviceID uuid.UUID, serviceType cart.ServiceType) (*CartLine, error)
	BookingReferenceExists(ctx context.Context, reference string) (bool, error)
	BookingStatusForUpdate(ctx context.Context, userID, bookingID uuid.UUID) (*BookingStatusSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type PreferenceRepository interface {
	ReplaceAll(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, rows []preference.Row) error
}

type CartRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, item *cart.Item) (uuid.UUID, error)
	UpdateQuantity(ctx context.Context, tx sqlc.DBTX, userID, itemID uuid.UUID, qty cart.Quantity) (bool, error)
	Delete(ctx context.Context, tx sqlc.DBTX, userID, itemID uuid.UUID) (bool, error)
	Clear(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, status booking.Status) error
}

type ActivityLogRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, entry ActivityEntry) error
}
