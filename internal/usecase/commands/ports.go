package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CampaignSnapshot struct {
	ID              uuid.UUID
	Title           string
	CompanyName     string
	Description     string
	DiscountDetails string
	TermsConditions *string
	ImageURL        *string
	CreatedAt       time.Time
	ExpiresAt       *time.Time
}

type DuesRecordSnapshot struct {
	ID          uuid.UUID
	MemberID    uuid.UUID
	Month       string
	Year        int
	Amount      int64
	IsPaid      bool
	PaymentDate *time.Time
	IBAN        string
}

type TokenSnapshot struct {
	Value      string
	CampaignID uuid.UUID
	MemberID   uuid.UUID
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Used       bool
	UsedAt     *time.Time
}
