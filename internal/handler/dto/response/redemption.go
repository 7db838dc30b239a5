package response

import (
	"time"

	"membership-portal/internal/usecase/commands"
)

type GenerateQRResponse struct {
	QRToken   string    `json:"qr_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromIssuedToken(t *commands.IssuedToken) *GenerateQRResponse {
	return &GenerateQRResponse{
		QRToken:   t.Token,
		ExpiresAt: t.ExpiresAt,
	}
}

// VerifyQRResponse is the scanning device's verdict, rendered directly as a
// confirmation page. Member and campaign are present only on success; on
// rejection the reason says why so the counter staff can read it out as is.
type VerifyQRResponse struct {
	Valid    bool                     `json:"valid"`
	Message  string                   `json:"message"`
	Reason   string                   `json:"reason,omitempty"`
	Campaign *VerifiedCampaignPayload `json:"campaign,omitempty"`
	Member   *VerifiedMemberPayload   `json:"member,omitempty"`
}

type VerifiedCampaignPayload struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

type VerifiedMemberPayload struct {
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Username string  `json:"username"`
	Photo    *string `json:"photo,omitempty"`
}

func FromVerificationResult(r *commands.VerificationResult) *VerifyQRResponse {
	resp := &VerifyQRResponse{
		Valid: r.Valid,
	}
	if r.Valid {
		resp.Message = "token redeemed"
	} else {
		resp.Message = "token rejected"
		resp.Reason = r.Reason
	}
	if r.Campaign != nil {
		resp.Campaign = &VerifiedCampaignPayload{
			Title:   r.Campaign.Title,
			Company: r.Campaign.Company,
		}
	}
	if r.Member != nil {
		resp.Member = &VerifiedMemberPayload{
			Name:     r.Member.Name,
			Surname:  r.Member.Surname,
			Username: r.Member.Username,
			Photo:    r.Member.Photo,
		}
	}
	return resp
}
