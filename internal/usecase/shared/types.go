package shared

import (
	"encoding/json"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceQuote is the current price and display data of one bookable service.
type ServiceQuote struct {
	ID        uuid.UUID
	Type      cart.ServiceType
	Name      string
	UnitPrice decimal.Decimal
	Info      map[string]any
}

// CartLine is a raw cart row. ServiceType is not validated on read.
type CartLine struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	ServiceType cart.ServiceType
	Quantity    int
	Details     json.RawMessage
}

type BookingStatusSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
}

const (
	ActionBookingCreated   = "booking_created"
	ActionBookingCancelled = "booking_cancelled"
	EntityBooking          = "booking"
)

type ActivityEntry struct {
	UserID     *uuid.UUID
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Details    map[string]any
}
