package response

import (
	"aerotrav/internal/domain/booking"
	"aerotrav/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	BookingID           uuid.UUID                   `json:"booking_id"`
	BookingReference    string                      `json:"booking_reference"`
	ServiceType         string                      `json:"service_type"`
	TotalAmount         string                      `json:"total_amount"`
	BookingDate         string                      `json:"booking_date"`
	PaymentInstructions booking.PaymentInstructions `json:"payment_instructions"`
	Items               []LineItemResponse          `json:"booking_details"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	out := CheckoutResponse{Items: []LineItemResponse{}}
	mustCopy(&out, r)
	return &out
}
