package commands

import (
	"context"
	"log/slog"
	"time"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra"
	"aerotrav/internal/pkg/clock"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty          = errs.New("cart is empty")
	ErrCheckoutInProgress = errs.New("checkout already in progress")
	ErrCheckoutFailed     = errs.New("checkout failed")
)

// CheckoutGuard serializes checkouts per key across processes.
// ok is false when another holder owns the key.
type CheckoutGuard interface {
	TryLock(ctx context.Context, key string) (unlock func(), ok bool, err error)
}

type CheckoutInput struct {
	UserID          uuid.UUID
	BookingDate     string
	ReturnDate      *string
	SpecialRequests *string
	PaymentMethod   string
}

type CheckoutResult struct {
	BookingID           uuid.UUID
	BookingReference    string
	ServiceType         string
	TotalAmount         decimal.Decimal
	BookingDate         time.Time
	PaymentInstructions booking.PaymentInstructions
	Items               []booking.LineItem
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow      shared.UnitOfWork
	guard    CheckoutGuard
	clock    clock.Clock
	refs     *booking.ReferenceGenerator
	activity ActivityRecorder
}

func NewCheckoutCommands(uow shared.UnitOfWork, guard CheckoutGuard, clk clock.Clock, refs *booking.ReferenceGenerator, activity ActivityRecorder) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:      uow,
		guard:    guard,
		clock:    clk,
		refs:     refs,
		activity: activity,
	}
}

func checkoutLockKey(userID uuid.UUID) string {
	return "checkout:" + userID.String()
}

// Checkout converts the user's cart into one pending booking. Either the booking
// exists and the cart is empty, or nothing changed.
func (uc *checkoutCommandsImpl) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if in.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	bookingDate, err := booking.ParseBookingDate(in.BookingDate, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	paymentMethod := booking.NormalizePaymentMethod(in.PaymentMethod)

	unlock, ok, err := uc.guard.TryLock(ctx, checkoutLockKey(in.UserID))
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	if !ok {
		return nil, ErrCheckoutInProgress
	}
	defer unlock()

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if lerr := tx.Users().LockForUpdate(ctx, tx.DB(), in.UserID); lerr != nil {
			return lerr
		}

		lines, lerr := tx.Reads().CartItems(ctx, in.UserID)
		if lerr != nil {
			return lerr
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		items := make([]booking.LineItem, 0, len(lines))
		for _, line := range lines {
			item, rerr := resolveLine(ctx, tx.Reads(), line)
			if rerr != nil {
				return rerr
			}
			items = append(items, item)
		}

		reference, rerr := uc.newReference(ctx, tx.Reads())
		if rerr != nil {
			return rerr
		}

		b, berr := booking.New(booking.NewParams{
			UserID:          in.UserID,
			Reference:       reference,
			Items:           items,
			BookingDate:     bookingDate,
			ReturnDate:      in.ReturnDate,
			SpecialRequests: in.SpecialRequests,
			PaymentMethod:   paymentMethod,
			Now:             uc.clock.Now(),
		})
		if berr != nil {
			return berr
		}

		if cerr := tx.Bookings().Create(ctx, tx.DB(), b); cerr != nil {
			return cerr
		}
		if _, cerr := tx.Carts().Clear(ctx, tx.DB(), in.UserID); cerr != nil {
			return cerr
		}

		created = b
		return nil
	}, shared.WithoutRetry())
	if err != nil {
		return nil, classifyCheckoutErr(in.UserID, err)
	}

	uc.recordCreated(ctx, created)

	return &CheckoutResult{
		BookingID:           created.ID(),
		BookingReference:    created.Reference(),
		ServiceType:         created.ServiceType(),
		TotalAmount:         created.Total(),
		BookingDate:         created.BookingDate(),
		PaymentInstructions: booking.PaymentInstructionsFor(paymentMethod, created.Reference(), created.Total()),
		Items:               created.Items(),
	}, nil
}

// resolveLine prices one cart row at the service's current price.
func resolveLine(ctx context.Context, reads shared.CommandReads, line shared.CartLine) (booking.LineItem, error) {
	if !line.ServiceType.IsValid() {
		return booking.LineItem{}, unavailable(line.ServiceType.String(), line.ServiceID)
	}
	qty, err := cart.NewQuantity(line.Quantity)
	if err != nil {
		return booking.LineItem{}, unavailable(line.ServiceType.String(), line.ServiceID)
	}

	quote, err := reads.ServiceQuote(ctx, line.ServiceType, line.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.LineItem{}, unavailable(line.ServiceType.String(), line.ServiceID)
		}
		return booking.LineItem{}, err
	}

	return booking.NewLineItem(line.ServiceID, line.ServiceType, quote.Name, qty, quote.UnitPrice, line.Details, quote.Info), nil
}

// newReference checks the primary format once; the fallback is not checked.
func (uc *checkoutCommandsImpl) newReference(ctx context.Context, reads shared.CommandReads) (string, error) {
	ref := uc.refs.Primary()
	exists, err := reads.BookingReferenceExists(ctx, ref)
	if err != nil {
		return "", err
	}
	if exists {
		ref = uc.refs.Fallback()
	}
	return ref, nil
}

func classifyCheckoutErr(userID uuid.UUID, err error) error {
	switch {
	case errs.Is(err, ErrCartEmpty), errs.Is(err, ErrServiceUnavailable):
		return err
	default:
		slog.Error("checkout rolled back", "user_id", userID, "error", err.Error())
		return errs.Mark(err, ErrCheckoutFailed)
	}
}

func (uc *checkoutCommandsImpl) recordCreated(ctx context.Context, b *booking.Booking) {
	userID := b.UserID()
	bookingID := b.ID()
	uc.activity.Record(ctx, shared.ActivityEntry{
		UserID:     &userID,
		Action:     shared.ActionBookingCreated,
		EntityType: shared.EntityBooking,
		EntityID:   &bookingID,
		Details: map[string]any{
			"booking_reference": b.Reference(),
			"total_amount":      b.Total().StringFixed(2),
			"item_count":        len(b.Items()),
		},
	})
}
