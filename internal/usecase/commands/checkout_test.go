//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra/cache"
	"aerotrav/internal/pkg/clock"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type busyGuard struct{}

func (busyGuard) TryLock(context.Context, string) (func(), bool, error) {
	return nil, false, nil
}

type CheckoutCommandsTestSuite struct {
	suite.Suite
	store    *memStore
	recorder *syncRecorder
	clock    *clock.MockClock
	guard    *cache.LocalLocker
	cmds     commands.CheckoutCommands
	userID   uuid.UUID
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.recorder = &syncRecorder{}
	s.clock = clock.NewMockClock(time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC))
	s.guard = cache.NewLocalLocker()
	s.userID = uuid.New()
	s.cmds = commands.NewCheckoutCommands(s.store, s.guard, s.clock,
		booking.NewReferenceGeneratorWithRand(s.clock, func(int) int { return 42 }), s.recorder)
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) TestCheckout_MixedCart() {
	hotel := s.store.addQuote(cart.ServiceHotel, "Harbor Hotel", "120.50")
	flight := s.store.addQuote(cart.ServiceFlight, "NH 101", "240.10")
	s.store.addCartLine(s.userID, hotel, cart.ServiceHotel, 2)
	s.store.addCartLine(s.userID, flight, cart.ServiceFlight, 1)

	res, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{
		UserID:      s.userID,
		BookingDate: "2026-07-01",
	})

	s.Require().NoError(err)
	s.True(mustDecimal("481.10").Equal(res.TotalAmount), res.TotalAmount.String())
	s.Equal(booking.ServiceTypeMixed, res.ServiceType)
	s.Equal("BK20260601000042", res.BookingReference)
	s.Equal("2026-07-01", booking.FormatDate(res.BookingDate))
	s.Len(res.Items, 2)
	s.Equal("Harbor Hotel", res.Items[0].ServiceName)
	s.True(mustDecimal("241").Equal(res.Items[0].TotalPrice))

	s.Equal(booking.PaymentMethodPending, res.PaymentInstructions.Method)
	s.Equal("481.10", res.PaymentInstructions.Amount)

	s.Empty(s.store.carts[s.userID], "cart must be emptied")
	s.Require().Len(s.store.bookings, 1)
	s.Equal(booking.StatusPending, s.store.bookings[0].Status())
	s.Equal([]uuid.UUID{s.userID}, s.store.locked)
	s.Equal([]string{"booking_created"}, s.recorder.actions())

	unlock, ok, err := s.guard.TryLock(context.Background(), "checkout:"+s.userID.String())
	s.Require().NoError(err)
	s.True(ok, "guard must be released after checkout")
	unlock()
}

func (s *CheckoutCommandsTestSuite) TestCheckout_SingleTypeKeepsServiceType() {
	car := s.store.addQuote(cart.ServiceCar, "Compact", "45")
	s.store.addCartLine(s.userID, car, cart.ServiceCar, 3)

	res, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID, PaymentMethod: "paypal"})

	s.Require().NoError(err)
	s.Equal("car", res.ServiceType)
	s.Equal("2026-06-01", booking.FormatDate(res.BookingDate), "blank date defaults to today")
	s.Equal("PayPal", res.PaymentInstructions.Title)
	s.Contains(res.PaymentInstructions.Steps[1], res.BookingReference)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_EmptyCart() {
	_, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID})

	s.ErrorIs(err, commands.ErrCartEmpty)
	s.Empty(s.store.bookings)
	s.Empty(s.recorder.actions())
}

func (s *CheckoutCommandsTestSuite) TestCheckout_UnavailableItemRollsBack() {
	hotel := s.store.addQuote(cart.ServiceHotel, "Harbor Hotel", "120.50")
	gone := uuid.New()
	s.store.addCartLine(s.userID, hotel, cart.ServiceHotel, 1)
	s.store.addCartLine(s.userID, gone, cart.ServiceFlight, 1)

	_, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID})

	var unavailable *commands.UnavailableItemError
	s.Require().True(errs.As(err, &unavailable), "got %v", err)
	s.Equal(gone, unavailable.ServiceID)
	s.Equal("flight", unavailable.ServiceType)
	s.True(errs.Is(err, commands.ErrServiceUnavailable))

	s.Len(s.store.carts[s.userID], 2, "cart must be untouched")
	s.Empty(s.store.bookings)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_UnknownStoredTypeIsUnavailable() {
	s.store.addCartLine(s.userID, uuid.New(), cart.ServiceType("cruise"), 1)

	_, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID})

	var unavailable *commands.UnavailableItemError
	s.Require().True(errs.As(err, &unavailable))
	s.Equal("cruise", unavailable.ServiceType)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_ReferenceCollisionUsesFallback() {
	hotel := s.store.addQuote(cart.ServiceHotel, "Harbor Hotel", "100")
	s.store.addCartLine(s.userID, hotel, cart.ServiceHotel, 1)
	s.store.refs["BK20260601000042"] = true

	res, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID})

	s.Require().NoError(err)
	s.Regexp(regexp.MustCompile(`^BK\d{13}0042$`), res.BookingReference)
	s.NotEqual("BK20260601000042", res.BookingReference)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_PersistFailureRollsBack() {
	hotel := s.store.addQuote(cart.ServiceHotel, "Harbor Hotel", "100")
	s.store.addCartLine(s.userID, hotel, cart.ServiceHotel, 1)
	s.store.createBookingErr = errs.New("insert failed")

	_, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID})

	s.True(errs.Is(err, commands.ErrCheckoutFailed))
	s.Len(s.store.carts[s.userID], 1)
	s.Empty(s.store.bookings)
	s.Empty(s.recorder.actions())
}

func (s *CheckoutCommandsTestSuite) TestCheckout_InvalidDate() {
	for _, in := range []string{"2026/07/01", "07-01-2026", "2026-13-01", "tomorrow"} {
		_, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID, BookingDate: in})
		s.True(errs.Is(err, errs.ErrDomainValidation), in)
	}
	s.Zero(s.store.withinCalls, "no transaction for invalid input")
}

func (s *CheckoutCommandsTestSuite) TestCheckout_Unauthenticated() {
	_, err := s.cmds.Checkout(context.Background(), commands.CheckoutInput{})
	s.ErrorIs(err, commands.ErrUnauthenticated)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_GuardBusy() {
	cmds := commands.NewCheckoutCommands(s.store, busyGuard{}, s.clock, booking.NewReferenceGenerator(s.clock), s.recorder)
	hotel := s.store.addQuote(cart.ServiceHotel, "Harbor Hotel", "100")
	s.store.addCartLine(s.userID, hotel, cart.ServiceHotel, 1)

	_, err := cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: s.userID})

	s.ErrorIs(err, commands.ErrCheckoutInProgress)
	s.Len(s.store.carts[s.userID], 1)
}

func TestCheckout_ConcurrentSameUserCreatesOneBooking(t *testing.T) {
	store := newMemStore()
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	cmds := commands.NewCheckoutCommands(store, cache.NewLocalLocker(), clk, booking.NewReferenceGenerator(clk), &syncRecorder{})

	userID := uuid.New()
	hotel := store.addQuote(cart.ServiceHotel, "Harbor Hotel", "100")
	store.addCartLine(userID, hotel, cart.ServiceHotel, 1)

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cmds.Checkout(context.Background(), commands.CheckoutInput{UserID: userID})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errs.Is(err, commands.ErrCheckoutInProgress) || errs.Is(err, commands.ErrCartEmpty), err.Error())
	}
	require.Equal(t, 1, succeeded)
	assert.Len(t, store.bookings, 1)
}
