//go:build e2e

package checkout_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"aerotrav/internal/domain/user"
	"aerotrav/internal/handler/dto/request"
	resdto "aerotrav/internal/handler/dto/response"
	"aerotrav/internal/usecase/queries"
	"aerotrav/tests/common/authtest"
	"aerotrav/tests/common/dbtest"
	"aerotrav/tests/common/httptest"
	"aerotrav/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL     = "/api/cart"
	cartItemURL = "/api/cart/items"
	checkoutURL = "/api/checkout"
	bookingsURL = "/api/bookings"
)

type checkoutSuite struct {
	e2e.SharedSuite
	token  string
	userID uuid.UUID
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.userID = dbtest.CreateTestUser(s.T(), s.DB, "traveler@example.com", string(user.RoleCustomer))
	s.token = authtest.LoginUser(s.T(), s.Router, "traveler@example.com", "password123")
}

func (s *checkoutSuite) addItem(serviceID uuid.UUID, serviceType string, qty int) {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartItemURL, request.AddCartItemRequest{
		ServiceID:   serviceID,
		ServiceType: serviceType,
		Quantity:    qty,
	}, s.token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
}

func (s *checkoutSuite) cartCount() int {
	var n int
	err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM carts WHERE user_id = $1", s.userID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *checkoutSuite) bookingCount() int {
	var n int
	err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM bookings WHERE user_id = $1", s.userID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *checkoutSuite) TestCheckout() {
	s.Run("カートが1件の予約に変換される", func() {
		t := s.T()
		hotel := dbtest.CreateHotel(t, s.DB, "Gion Inn", "120.10", true)
		flight := dbtest.CreateFlight(t, s.DB, "AJ101", "0.10", 50)

		s.addItem(hotel, "hotel", 3)
		s.addItem(flight, "flight", 7)
		// same service again merges into one line
		s.addItem(hotel, "hotel", 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{
			BookingDate:   "2025-12-01",
			PaymentMethod: "credit_card",
		}, s.token)

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.Regexp(t, `^BK\d{14}$`, res.BookingReference)
		assert.Equal(t, "481.10", res.TotalAmount)
		assert.Equal(t, "mixed", res.ServiceType)
		assert.Equal(t, "2025-12-01", res.BookingDate)
		assert.Equal(t, "credit_card", res.PaymentInstructions.Method)
		assert.Len(t, res.Items, 2)

		assert.Zero(t, s.cartCount(), "カートが空になっていない")
		assert.Equal(t, 1, s.bookingCount())

		var status, payment string
		err := s.DB.QueryRow(t.Context(), "SELECT booking_status, payment_status FROM bookings WHERE id = $1", res.BookingID).Scan(&status, &payment)
		require.NoError(t, err)
		assert.Equal(t, "pending", status)
		assert.Equal(t, "pending", payment)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.token)
		var bookings resdto.BookingListResponse
		httptest.AssertSuccessResponse(t, list, http.StatusOK, &bookings)
		require.Len(t, bookings.Bookings, 1)
		assert.Equal(t, res.BookingReference, bookings.Bookings[0].BookingReference)
	})

	s.Run("空のカートは400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, nil, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Cart is empty")
		assert.Zero(s.T(), s.bookingCount())
	})

	s.Run("日付形式が不正なら400", func() {
		car := dbtest.CreateCar(s.T(), s.DB, "Prius", "45.00")
		s.addItem(car, "car", 1)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{BookingDate: "2025/12/01"}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
		assert.Equal(s.T(), 1, s.cartCount())
	})

	s.Run("販売停止になった商品があれば全体をロールバック", func() {
		t := s.T()
		car := dbtest.CreateCar(t, s.DB, "Aqua", "30.00")
		hotel := dbtest.CreateHotel(t, s.DB, "Closed Ryokan", "80.00", true)
		s.addItem(car, "car", 2)
		s.addItem(hotel, "hotel", 1)

		_, err := s.DB.Exec(t.Context(), "UPDATE hotels SET is_active = false WHERE id = $1", hotel)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, hotel.String())

		assert.Equal(t, 2, s.cartCount(), "カートが変更されている")
		assert.Zero(t, s.bookingCount(), "予約が作成されている")
	})

	s.Run("同時チェックアウトでも予約は1件", func() {
		t := s.T()
		pkg := dbtest.CreatePackage(t, s.DB, "Alps", "999.00", `["hiking"]`, `["adventure"]`, `[]`)
		s.addItem(pkg, "package", 1)

		const n = 5
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, s.token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
			} else {
				assert.Contains(t, []int{http.StatusBadRequest, http.StatusConflict}, c)
			}
		}
		assert.Equal(t, 1, created, fmt.Sprint(codes))
		assert.Equal(t, 1, s.bookingCount())
	})
}

func (s *checkoutSuite) TestCancel() {
	s.Run("保留中の予約はキャンセルでき、二度目は409", func() {
		t := s.T()
		car := dbtest.CreateCar(t, s.DB, "Yaris", "40.00")
		s.addItem(car, "car", 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, s.token)
		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)

		url := fmt.Sprintf("%s/%s/cancel", bookingsURL, res.BookingID)
		first := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.token)
		require.Equal(t, http.StatusNoContent, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.token)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "cannot be cancelled")
	})

	s.Run("他人の予約は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("%s/%s/cancel", bookingsURL, uuid.New()), nil, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *checkoutSuite) TestRecommendations() {
	s.Run("嗜好に近いパッケージが上位に来る", func() {
		t := s.T()
		dbtest.CreatePackage(t, s.DB, "Beach Escape", "500.00", `["swimming","snorkeling"]`, `["relaxation"]`, `["beach"]`)
		dbtest.CreatePackage(t, s.DB, "Mountain Trek", "1500.00", `["hiking"]`, `["adventure"]`, `["mountain"]`)
		dbtest.CreatePackage(t, s.DB, "Broken Tags", "800.00", `not-json`, `{`, ``)

		minB, maxB := 400.0, 600.0
		put := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/preferences", request.SavePreferencesRequest{
			PreferredActivities: []string{"swimming"},
			TravelStyles:        []string{"relaxation"},
			BudgetMin:           &minB,
			BudgetMax:           &maxB,
		}, s.token)
		require.Equal(t, http.StatusOK, put.Code, put.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/recommendations?limit=2", nil, s.token)
		var res queries.RecommendationsView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Packages, 2)
		assert.Equal(t, "Beach Escape", res.Packages[0].Name)
		assert.GreaterOrEqual(t, res.Packages[0].SimilarityScore, res.Packages[1].SimilarityScore)
		assert.Equal(t, 3, res.Pagination.Total)
		assert.True(t, res.Pagination.HasNext)
	})

	s.Run("pageが数値でなければ400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recommendations?page=abc", nil, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid pagination")
	})
}

func (s *checkoutSuite) TestCart() {
	s.Run("数量更新と削除", func() {
		t := s.T()
		hotel := dbtest.CreateHotel(t, s.DB, "Harbor View", "99.00", true)
		s.addItem(hotel, "hotel", 9)
		s.addItem(hotel, "hotel", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, s.token)
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 10, cart.Items[0].Quantity, "数量は上限10で頭打ち")

		itemURL := fmt.Sprintf("%s/%s", cartItemURL, cart.Items[0].ID)
		patch := httptest.PerformRequest(t, s.Router, http.MethodPatch, itemURL, request.UpdateCartItemRequest{Quantity: 2}, s.token)
		require.Equal(t, http.StatusNoContent, patch.Code, patch.Body.String())

		bad := httptest.PerformRequest(t, s.Router, http.MethodPatch, itemURL, map[string]int{"quantity": 11}, s.token)
		httptest.AssertErrorResponse(t, bad, http.StatusBadRequest, "")

		del := httptest.PerformRequest(t, s.Router, http.MethodDelete, itemURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, del.Code)

		again := httptest.PerformRequest(t, s.Router, http.MethodDelete, itemURL, nil, s.token)
		httptest.AssertErrorResponse(t, again, http.StatusNotFound, "Cart item not found")
	})

	s.Run("存在しないサービスは404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartItemURL, request.AddCartItemRequest{
			ServiceID:   uuid.New(),
			ServiceType: "flight",
			Quantity:    1,
		}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}
