package response

import (
	"time"

	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CampaignResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	CompanyName     string     `json:"company_name"`
	Description     string     `json:"description"`
	DiscountDetails string     `json:"discount_details"`
	TermsConditions *string    `json:"terms_conditions,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

func FromCampaignView(v *queries.CampaignView) *CampaignResponse {
	var resp CampaignResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCampaignViews(views []*queries.CampaignView) []*CampaignResponse {
	responses := make([]*CampaignResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromCampaignView(v))
	}
	return responses
}
