package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotCancellable = errors.New("booking is already cancelled or completed")

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	reference       string
	serviceType     string
	items           []LineItem
	total           decimal.Decimal
	paymentStatus   PaymentStatus
	status          Status
	bookingDate     time.Time
	returnDate      *string
	specialRequests *string
	paymentMethod   string
	createdAt       time.Time
}

type NewParams struct {
	UserID          uuid.UUID
	Reference       string
	Items           []LineItem
	BookingDate     time.Time
	ReturnDate      *string
	SpecialRequests *string
	PaymentMethod   string
	Now             time.Time
}

// New creates a pending booking whose total and service type derive from its items.
func New(p NewParams) (*Booking, error) {
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	return &Booking{
		id:              uuid.New(),
		userID:          p.UserID,
		reference:       p.Reference,
		serviceType:     ResolveServiceType(p.Items),
		items:           p.Items,
		total:           Total(p.Items),
		paymentStatus:   PaymentPending,
		status:          StatusPending,
		bookingDate:     p.BookingDate,
		returnDate:      p.ReturnDate,
		specialRequests: p.SpecialRequests,
		paymentMethod:   NormalizePaymentMethod(p.PaymentMethod),
		createdAt:       p.Now,
	}, nil
}

// EnsureCancellable rejects terminal states.
func EnsureCancellable(s Status) error {
	if s.IsTerminal() {
		return ErrNotCancellable
	}
	return nil
}

func (b *Booking) ID() uuid.UUID { return b.id }
func (b *Booking) UserID() uuid.UUID { return b.userID }
func (b *Booking) Reference() string { return b.reference }
func (b *Booking) ServiceType() string { return b.serviceType }
func (b *Booking) Items() []LineItem { return b.items }
func (b *Booking) Total() decimal.Decimal { return b.total }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) ReturnDate() *string { return b.returnDate }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) PaymentMethod() string { return b.paymentMethod }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
