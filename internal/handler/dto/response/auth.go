package response

import (
	"time"

	"membership-portal/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Member      *MemberResponse `json:"member"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		Member:      FromMemberView(result.Member),
	}
}
