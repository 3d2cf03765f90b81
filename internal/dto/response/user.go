package response

import (
	"time"

	"find-fuel/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string      `json:"id"`
	Usuario   string      `json:"usuario"`
	Nome      string      `json:"nome"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Usuario:   user.Usuario,
		Nome:      user.Nome,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
