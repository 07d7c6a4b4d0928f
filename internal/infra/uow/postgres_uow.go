package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra/readstore"
	"aerotrav/internal/infra/repository"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultMaxRetries = 3

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error, opts ...shared.TxOption) error {
	cfg := shared.ApplyTxOptions(opts...)
	maxRetries := defaultMaxRetries
	if !cfg.Retry {
		maxRetries = 0
	}
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, maxRetries, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, maxRetries int, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = callRollingBackOnPanic(ctx, pgxTx, func() error { return fn(ctx, tx) })
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if maxRetries > 0 && attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

type rollbacker interface {
	Rollback(ctx context.Context) error
}

// callRollingBackOnPanic releases the transaction before re-panicking so the
// pooled connection is not left inside an open transaction.
func callRollingBackOnPanic(ctx context.Context, tx rollbacker, fn func() error) error {
	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback after panic failed", "error", rollbackErr.Error())
			}
			panic(p)
		}
	}()
	return fn()
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo       shared.UserRepository
	preferenceRepo shared.PreferenceRepository
	cartRepo       shared.CartRepository
	bookingRepo    shared.BookingRepository
	activityRepo   shared.ActivityLogRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Preferences() shared.PreferenceRepository {
	if t.preferenceRepo == nil {
		t.preferenceRepo = repository.NewPreferenceRepository(t.uow.q)
	}
	return t.preferenceRepo
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q)
	}
	return t.cartRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) ActivityLogs() shared.ActivityLogRepository {
	if t.activityRepo == nil {
		t.activityRepo = repository.NewActivityLogRepository(t.uow.q)
	}
	return t.activityRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	serviceStore *readstore.ServiceReadStore
	cartStore    *readstore.CartLineStore
	bookingStore *readstore.BookingStatusStore
}

func (r *commandReads) services() *readstore.ServiceReadStore {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.uow.q, r.dbtx)
	}
	return r.serviceStore
}

func (r *commandReads) carts() *readstore.CartLineStore {
	if r.cartStore == nil {
		r.cartStore = readstore.NewCartLineStore(r.uow.q, r.dbtx)
	}
	return r.cartStore
}

func (r *commandReads) bookings() *readstore.BookingStatusStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingStatusStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) ServiceQuote(ctx context.Context, serviceType cart.ServiceType, serviceID uuid.UUID) (*shared.ServiceQuote, error) {
	return r.services().Quote(ctx, serviceType, serviceID)
}

func (r *commandReads) CartItems(ctx context.Context, userID uuid.UUID) ([]shared.CartLine, error) {
	return r.carts().Lines(ctx, userID)
}

func (r *commandReads) CartItemByService(ctx context.Context, userID, serviceID uuid.UUID, serviceType cart.ServiceType) (*shared.CartLine, error) {
	return r.carts().LineByService(ctx, userID, serviceID, serviceType)
}

func (r *commandReads) BookingReferenceExists(ctx context.Context, reference string) (bool, error) {
	return r.bookings().ReferenceExists(ctx, reference)
}

func (r *commandReads) BookingStatusForUpdate(ctx context.Context, userID, bookingID uuid.UUID) (*shared.BookingStatusSnapshot, error) {
	return r.bookings().StatusForUpdate(ctx, userID, bookingID)
}
