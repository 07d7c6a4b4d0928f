package request

import (
	"encoding/json"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ServiceID   uuid.UUID       `json:"service_id" binding:"required"`
	ServiceType string          `json:"service_type" binding:"required,oneof=hotel flight car package"`
	Quantity    int             `json:"quantity" binding:"omitempty,min=1,max=10"`
	Details     json.RawMessage `json:"details" swaggertype:"object"`
}

// QuantityOrDefault treats an omitted quantity as one.
func (r AddCartItemRequest) QuantityOrDefault() int {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}
