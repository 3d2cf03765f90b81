package response

import (
	"time"

	"find-fuel/internal/data/entity"
)

type TokenPairResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresAt    time.Time     `json:"expires_at"`
	User         *UserResponse `json:"user,omitempty"`
}

func TokenPairToResponse(access, refresh string, expiresAt time.Time, user *entity.User) *TokenPairResponse {
	resp := &TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresAt:    expiresAt,
	}

	if user != nil {
		u := UserToResponse(user)
		resp.User = &u
	}

	return resp
}
