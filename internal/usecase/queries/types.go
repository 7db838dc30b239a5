package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type MemberView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Username     string    `json:"username"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

type DuesRecordView struct {
	ID          uuid.UUID  `json:"id"`
	MemberID    uuid.UUID  `json:"member_id"`
	Month       string     `json:"month"`
	Year        int        `json:"year"`
	Amount      int64      `json:"amount"`
	IsPaid      bool       `json:"is_paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	IBAN        string     `json:"iban"`
}

type CampaignView struct {
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
