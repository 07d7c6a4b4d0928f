package response

import (
	"encoding/json"
	"time"

	"aerotrav/internal/usecase/commands"
	"aerotrav/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceType string          `json:"service_type"`
	Quantity    int             `json:"quantity"`
	Details     json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	out := CartResponse{Items: []CartItemResponse{}}
	mustCopy(&out, v)
	return &out
}

type AddCartItemResponse struct {
	ItemID      uuid.UUID `json:"item_id"`
	Quantity    int       `json:"quantity"`
	ServiceName string    `json:"service_name"`
}

func FromAddCartItemResult(r *commands.AddCartItemResult) *AddCartItemResponse {
	var out AddCartItemResponse
	mustCopy(&out, r)
	return &out
}
