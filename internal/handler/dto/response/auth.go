package response

import (
	"aerotrav/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	if v == nil {
		return nil
	}
	var out UserResponse
	mustCopy(&out, v)
	return &out
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
