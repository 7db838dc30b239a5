package request

import "time"

type CreateCampaignRequest struct {
	Title           string     `json:"title" binding:"required"`
	CompanyName     string     `json:"company_name" binding:"required"`
	Description     string     `json:"description"`
	DiscountDetails string     `json:"discount_details"`
	TermsConditions *string    `json:"terms_conditions,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type UpdateCampaignRequest struct {
	Title           string     `json:"title" binding:"required"`
	CompanyName     string     `json:"company_name" binding:"required"`
	Description     string     `json:"description"`
	DiscountDetails string     `json:"discount_details"`
	TermsConditions *string    `json:"terms_conditions,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
