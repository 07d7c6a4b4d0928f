//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"sync"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/cart"
	"aerotrav/internal/domain/preference"
	"aerotrav/internal/domain/user"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory shared.UnitOfWork. A failing Within restores the
// state captured when it started.
type memStore struct {
	mu sync.Mutex

	quotes   map[uuid.UUID]shared.ServiceQuote
	carts    map[uuid.UUID][]shared.CartLine
	bookings []*booking.Booking
	statuses map[uuid.UUID]shared.BookingStatusSnapshot
	refs     map[string]bool
	prefs    map[uuid.UUID][]preference.Row
	emails   map[string]uuid.UUID
	locked   []uuid.UUID
	logins   []uuid.UUID

	createBookingErr error
	withinCalls      int
}

func newMemStore() *memStore {
	return &memStore{
		quotes:   map[uuid.UUID]shared.ServiceQuote{},
		carts:    map[uuid.UUID][]shared.CartLine{},
		statuses: map[uuid.UUID]shared.BookingStatusSnapshot{},
		refs:     map[string]bool{},
		prefs:    map[uuid.UUID][]preference.Row{},
		emails:   map[string]uuid.UUID{},
	}
}

type memSnapshot struct {
	carts    map[uuid.UUID][]shared.CartLine
	bookings []*booking.Booking
	statuses map[uuid.UUID]shared.BookingStatusSnapshot
	refs     map[string]bool
	prefs    map[uuid.UUID][]preference.Row
}

func (s *memStore) snapshot() memSnapshot {
	carts := make(map[uuid.UUID][]shared.CartLine, len(s.carts))
	for k, v := range s.carts {
		carts[k] = slices.Clone(v)
	}
	return memSnapshot{
		carts:    carts,
		bookings: slices.Clone(s.bookings),
		statuses: maps.Clone(s.statuses),
		refs:     maps.Clone(s.refs),
		prefs:    maps.Clone(s.prefs),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.carts = snap.carts
	s.bookings = snap.bookings
	s.statuses = snap.statuses
	s.refs = snap.refs
	s.prefs = snap.prefs
}

func (s *memStore) addQuote(t cart.ServiceType, name, price string) uuid.UUID {
	q := shared.ServiceQuote{ID: uuid.New(), Type: t, Name: name, UnitPrice: mustDecimal(price)}
	s.quotes[q.ID] = q
	return q.ID
}

func (s *memStore) addCartLine(userID, serviceID uuid.UUID, t cart.ServiceType, qty int) {
	s.carts[userID] = append(s.carts[userID], shared.CartLine{
		ID: uuid.New(), ServiceID: serviceID, ServiceType: t, Quantity: qty,
	})
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error, _ ...shared.TxOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.withinCalls++
	snap := s.snapshot()
	if err := fn(ctx, memTx{s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) CommandReads() shared.CommandReads { return memReads{s} }

type memTx struct{ s *memStore }

func (t memTx) Users() shared.UserRepository               { return memUsers(t) }
func (t memTx) Preferences() shared.PreferenceRepository   { return memPrefs(t) }
func (t memTx) Carts() shared.CartRepository               { return memCarts(t) }
func (t memTx) Bookings() shared.BookingRepository         { return memBookings(t) }
func (t memTx) ActivityLogs() shared.ActivityLogRepository { return memActivity(t) }
func (t memTx) Reads() shared.CommandReads                 { return memReads(t) }
func (t memTx) DB() sqlc.DBTX                              { return nil }

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	email := u.Email().Value()
	if _, taken := r.s.emails[email]; taken {
		return uuid.Nil, infra.WrapRepoErr("user exists", nil, infra.KindDuplicateKey)
	}
	r.s.emails[email] = u.ID()
	return u.ID(), nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	r.s.logins = append(r.s.logins, userID)
	return nil
}

func (r memUsers) LockForUpdate(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	r.s.locked = append(r.s.locked, userID)
	return nil
}

type memPrefs struct{ s *memStore }

func (r memPrefs) ReplaceAll(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, rows []preference.Row) error {
	r.s.prefs[userID] = slices.Clone(rows)
	return nil
}

type memCarts struct{ s *memStore }

func (r memCarts) Upsert(_ context.Context, _ sqlc.DBTX, item *cart.Item) (uuid.UUID, error) {
	lines := r.s.carts[item.UserID()]
	for i := range lines {
		if lines[i].ServiceID == item.ServiceID() && lines[i].ServiceType == item.ServiceType() {
			lines[i].Quantity = item.Quantity().Value()
			lines[i].Details = item.Details()
			return lines[i].ID, nil
		}
	}
	r.s.carts[item.UserID()] = append(lines, shared.CartLine{
		ID:          item.ID(),
		ServiceID:   item.ServiceID(),
		ServiceType: item.ServiceType(),
		Quantity:    item.Quantity().Value(),
		Details:     item.Details(),
	})
	return item.ID(), nil
}

func (r memCarts) UpdateQuantity(_ context.Context, _ sqlc.DBTX, userID, itemID uuid.UUID, qty cart.Quantity) (bool, error) {
	lines := r.s.carts[userID]
	for i := range lines {
		if lines[i].ID == itemID {
			lines[i].Quantity = qty.Value()
			return true, nil
		}
	}
	return false, nil
}

func (r memCarts) Delete(_ context.Context, _ sqlc.DBTX, userID, itemID uuid.UUID) (bool, error) {
	lines := r.s.carts[userID]
	for i := range lines {
		if lines[i].ID == itemID {
			r.s.carts[userID] = slices.Delete(slices.Clone(lines), i, i+1)
			return true, nil
		}
	}
	return false, nil
}

func (r memCarts) Clear(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n := int64(len(r.s.carts[userID]))
	delete(r.s.carts, userID)
	return n, nil
}

type memBookings struct{ s *memStore }

func (r memBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if r.s.createBookingErr != nil {
		return r.s.createBookingErr
	}
	r.s.bookings = append(r.s.bookings, b)
	r.s.refs[b.Reference()] = true
	r.s.statuses[b.ID()] = shared.BookingStatusSnapshot{
		ID: b.ID(), UserID: b.UserID(), Status: b.Status(), PaymentStatus: b.PaymentStatus(),
	}
	return nil
}

func (r memBookings) UpdateStatus(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, status booking.Status) error {
	snap, ok := r.s.statuses[bookingID]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.Status = status
	r.s.statuses[bookingID] = snap
	return nil
}

type memActivity struct{ s *memStore }

func (r memActivity) Record(context.Context, sqlc.DBTX, shared.ActivityEntry) error { return nil }

type memReads struct{ s *memStore }

func (r memReads) ServiceQuote(_ context.Context, t cart.ServiceType, id uuid.UUID) (*shared.ServiceQuote, error) {
	q, ok := r.s.quotes[id]
	if !ok || q.Type != t {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return &q, nil
}

func (r memReads) CartItems(_ context.Context, userID uuid.UUID) ([]shared.CartLine, error) {
	return slices.Clone(r.s.carts[userID]), nil
}

func (r memReads) CartItemByService(_ context.Context, userID, serviceID uuid.UUID, t cart.ServiceType) (*shared.CartLine, error) {
	for _, line := range r.s.carts[userID] {
		if line.ServiceID == serviceID && line.ServiceType == t {
			return &line, nil
		}
	}
	return nil, infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
}

func (r memReads) BookingReferenceExists(_ context.Context, reference string) (bool, error) {
	return r.s.refs[reference], nil
}

func (r memReads) BookingStatusForUpdate(_ context.Context, userID, bookingID uuid.UUID) (*shared.BookingStatusSnapshot, error) {
	snap, ok := r.s.statuses[bookingID]
	if !ok || snap.UserID != userID {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

// syncRecorder keeps audit entries in memory instead of writing them asynchronously.
type syncRecorder struct {
	mu      sync.Mutex
	entries []shared.ActivityEntry
}

func (r *syncRecorder) Record(_ context.Context, entry shared.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *syncRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}
