package response

import (
	"encoding/json"
	"time"

	"aerotrav/internal/domain/recommendation"
	"aerotrav/internal/usecase/queries"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceType string          `json:"service_type"`
	ServiceName string          `json:"service_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   string          `json:"unit_price"`
	TotalPrice  string          `json:"total_price"`
	Details     json.RawMessage `json:"details" swaggertype:"object"`
	ServiceInfo map[string]any  `json:"service_info"`
}

type BookingResponse struct {
	ID               uuid.UUID          `json:"id"`
	BookingReference string             `json:"booking_reference"`
	ServiceType      string             `json:"service_type"`
	Items            []LineItemResponse `json:"details"`
	TotalAmount      string             `json:"total_amount"`
	PaymentStatus    string             `json:"payment_status"`
	BookingStatus    string             `json:"booking_status"`
	BookingDate      string             `json:"booking_date"`
	ReturnDate       *string            `json:"return_date,omitempty"`
	SpecialRequests  *string            `json:"special_requests,omitempty"`
	PaymentMethod    string             `json:"payment_method"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	out := BookingResponse{Items: []LineItemResponse{}}
	mustCopy(&out, v)
	return &out
}

type BookingListResponse struct {
	Bookings   []BookingResponse         `json:"bookings"`
	Pagination recommendation.Pagination `json:"pagination"`
}

func FromBookingListView(v *queries.BookingListView) *BookingListResponse {
	out := BookingListResponse{Bookings: make([]BookingResponse, 0, len(v.Bookings))}
	for i := range v.Bookings {
		out.Bookings = append(out.Bookings, *FromBookingView(&v.Bookings[i]))
	}
	out.Pagination = v.Pagination
	return &out
}
