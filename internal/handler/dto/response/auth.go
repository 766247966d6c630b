package response

import (
	"github.com/google/uuid"

	"humipay/internal/usecase/commands"
)

type LoginUser struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		User: LoginUser{
			ID:      r.UserID,
			Email:   r.Email,
			IsAdmin: r.IsAdmin,
		},
	}
}
