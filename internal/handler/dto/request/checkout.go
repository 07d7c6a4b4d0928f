package request

type CheckoutRequest struct {
	// YYYY-MM-DD; today when empty.
	BookingDate     string  `json:"booking_date"`
	ReturnDate      *string `json:"return_date,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty" binding:"omitempty,max=2000"`
	PaymentMethod   string  `json:"payment_method" binding:"omitempty,max=30"`
}
