//go:build unit

package queries_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"aerotrav/internal/domain/catalog"
	"aerotrav/internal/domain/preference"
	"aerotrav/internal/infra"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPreferenceStore struct {
	rows map[uuid.UUID][]preference.Row
	err  error
}

func (s stubPreferenceStore) ListRows(_ context.Context, userID uuid.UUID) ([]preference.Row, error) {
	return s.rows[userID], s.err
}

type stubPackageStore struct {
	pkgs  []catalog.Package
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (s *stubPackageStore) ListActive(ctx context.Context) ([]catalog.Package, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.pkgs, s.err
}

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestGetRecommendations(t *testing.T) {
	userID := uuid.New()
	prefs := stubPreferenceStore{rows: map[uuid.UUID][]preference.Row{
		userID: {
			{Key: "preferred_activities", Value: `["hiking","onsen"]`},
			{Key: "travel_style", Value: `adventure`},
			{Key: "budget_range_min", Value: `1000`},
			{Key: "budget_range_max", Value: `2000`},
		},
	}}
	alps := catalog.Package{ID: uuid.New(), Name: "Alps Trek", Price: price("1500"), Activities: []string{"Hiking"}, TravelStyles: []string{"adventure"}}
	beach := catalog.Package{ID: uuid.New(), Name: "Beach Week", Price: price("1500"), Activities: []string{"swimming"}}
	spa := catalog.Package{ID: uuid.New(), Name: "Spa Retreat", BasePrice: price("5000"), Activities: []string{"onsen"}}

	t.Run("興味と予算で並ぶ", func(t *testing.T) {
		store := &stubPackageStore{pkgs: []catalog.Package{beach, spa, alps}}
		view, err := queries.NewRecommendationQueries(prefs, store).GetRecommendations(context.Background(), userID, 0, 0)
		require.NoError(t, err)

		require.Len(t, view.Packages, 3)
		assert.Equal(t, "Alps Trek", view.Packages[0].Name)
		assert.InDelta(t, 1.0, view.Packages[0].PriceScore, 1e-9)
		assert.Equal(t, "5000", view.Packages[2].Price.String(), "base price used when price is unset")
		assert.Equal(t, 1, view.Pagination.Page)
		assert.Equal(t, 10, view.Pagination.Limit)
		assert.Equal(t, []string{"adventure"}, view.UserPreferences.TravelStyles, "scalar value becomes a one-element list")
		assert.NotNil(t, view.Packages[1].Activities)
	})

	t.Run("ページ分割", func(t *testing.T) {
		store := &stubPackageStore{pkgs: []catalog.Package{beach, spa, alps}}
		view, err := queries.NewRecommendationQueries(prefs, store).GetRecommendations(context.Background(), userID, 2, 2)
		require.NoError(t, err)

		require.Len(t, view.Packages, 1)
		assert.Equal(t, 3, view.Pagination.Total)
		assert.Equal(t, 2, view.Pagination.Pages)
		assert.False(t, view.Pagination.HasNext)
		assert.True(t, view.Pagination.HasPrev)
	})

	t.Run("嗜好なしでも全件返す", func(t *testing.T) {
		store := &stubPackageStore{pkgs: []catalog.Package{beach, spa, alps}}
		view, err := queries.NewRecommendationQueries(stubPreferenceStore{}, store).GetRecommendations(context.Background(), uuid.New(), 1, 500)
		require.NoError(t, err)

		assert.Len(t, view.Packages, 3)
		assert.Equal(t, 100, view.Pagination.Limit)
		assert.Empty(t, view.UserPreferences.PreferredActivities)
	})

	t.Run("読み出し失敗", func(t *testing.T) {
		store := &stubPackageStore{err: errs.New("db down")}
		_, err := queries.NewRecommendationQueries(prefs, store).GetRecommendations(context.Background(), userID, 1, 10)
		assert.True(t, errs.Is(err, queries.ErrRecommendationsFailed))
	})

	t.Run("未認証", func(t *testing.T) {
		_, err := queries.NewRecommendationQueries(prefs, &stubPackageStore{}).GetRecommendations(context.Background(), uuid.Nil, 1, 10)
		assert.ErrorIs(t, err, queries.ErrUnauthenticated)
	})
}

func TestGetRecommendations_CoalescesConcurrentScans(t *testing.T) {
	store := &stubPackageStore{
		pkgs: []catalog.Package{{ID: uuid.New(), Name: "Only", Price: price("100")}},
		gate: make(chan struct{}),
	}
	q := queries.NewRecommendationQueries(stubPreferenceStore{}, store)

	const callers = 5
	var wg sync.WaitGroup
	var started sync.WaitGroup
	started.Add(callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			view, err := q.GetRecommendations(context.Background(), uuid.New(), 1, 10)
			assert.NoError(t, err)
			assert.Len(t, view.Packages, 1)
		}()
	}
	started.Wait()
	close(store.gate)
	wg.Wait()

	assert.LessOrEqual(t, store.calls.Load(), int32(callers))
	assert.GreaterOrEqual(t, store.calls.Load(), int32(1))
}

func TestGetRecommendations_CancelledCallerDoesNotFailOthers(t *testing.T) {
	store := &stubPackageStore{
		pkgs: []catalog.Package{{ID: uuid.New(), Name: "Only", Price: price("100")}},
		gate: make(chan struct{}),
	}
	q := queries.NewRecommendationQueries(stubPreferenceStore{}, store)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := q.GetRecommendations(ctxA, uuid.New(), 1, 10)
		errA <- err
	}()
	require.Eventually(t, func() bool { return store.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		view *queries.RecommendationsView
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		view, err := q.GetRecommendations(context.Background(), uuid.New(), 1, 10)
		resB <- result{view, err}
	}()

	cancelA()
	select {
	case err := <-errA:
		assert.True(t, errs.Is(err, queries.ErrRecommendationsFailed))
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("キャンセルされた呼び出しが戻らない")
	}

	close(store.gate)
	got := <-resB
	require.NoError(t, got.err)
	assert.Len(t, got.view.Packages, 1)
}

type stubBookingStore struct {
	total      int
	listCalled bool
	gotLimit   int
	gotOffset  int
	found      *queries.BookingView
}

func (s *stubBookingStore) ListByUser(_ context.Context, _ uuid.UUID, limit, offset int) ([]queries.BookingView, error) {
	s.listCalled = true
	s.gotLimit, s.gotOffset = limit, offset
	return []queries.BookingView{{ID: uuid.New()}}, nil
}

func (s *stubBookingStore) CountByUser(context.Context, uuid.UUID) (int, error) {
	return s.total, nil
}

func (s *stubBookingStore) FindByID(context.Context, uuid.UUID, uuid.UUID) (*queries.BookingView, error) {
	if s.found == nil {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.found, nil
}

func TestListBookings(t *testing.T) {
	userID := uuid.New()

	t.Run("offsetを計算する", func(t *testing.T) {
		store := &stubBookingStore{total: 25}
		view, err := queries.NewBookingQueries(store).ListBookings(context.Background(), userID, 3, 10)
		require.NoError(t, err)

		assert.Equal(t, 10, store.gotLimit)
		assert.Equal(t, 20, store.gotOffset)
		assert.Equal(t, 3, view.Pagination.Pages)
		assert.False(t, view.Pagination.HasNext)
		assert.True(t, view.Pagination.HasPrev)
	})

	t.Run("範囲外のページは問い合わせない", func(t *testing.T) {
		store := &stubBookingStore{total: 5}
		view, err := queries.NewBookingQueries(store).ListBookings(context.Background(), userID, 4, 2)
		require.NoError(t, err)

		assert.False(t, store.listCalled)
		assert.Empty(t, view.Bookings)
		assert.NotNil(t, view.Bookings)
	})

	t.Run("存在しない予約", func(t *testing.T) {
		_, err := queries.NewBookingQueries(&stubBookingStore{}).GetBooking(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

type stubCartStore []queries.CartItemView

func (s stubCartStore) ListByUser(context.Context, uuid.UUID) ([]queries.CartItemView, error) {
	return s, nil
}

func TestGetCart_CountsQuantities(t *testing.T) {
	store := stubCartStore{{Quantity: 2}, {Quantity: 3}}
	view, err := queries.NewCartQueries(store).GetCart(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Len(t, view.Items, 2)
	assert.Equal(t, 5, view.ItemCount)
}

func TestGetPreferences(t *testing.T) {
	userID := uuid.New()
	store := stubPreferenceStore{rows: map[uuid.UUID][]preference.Row{
		userID: {
			{Key: "favorite_destinations", Value: `["Kyoto", 7, ""]`},
			{Key: "budget_range_min", Value: `"800"`},
			{Key: "budget_range_max", Value: `not-a-number`},
			{Key: "schema_version", Value: `1`},
		},
	}}

	view, err := queries.NewPreferenceQueries(store).GetPreferences(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Kyoto"}, view.FavoriteDestinations)
	assert.Equal(t, []string{}, view.PreferredActivities)
	require.NotNil(t, view.BudgetMin)
	assert.InDelta(t, 800.0, *view.BudgetMin, 1e-9)
	assert.Nil(t, view.BudgetMax)
}
