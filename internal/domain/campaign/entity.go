package campaign

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCampaignExpired = errors.New("campaign has expired")
	ErrMissingTitle    = errors.New("campaign title is required")
	ErrMissingCompany  = errors.New("campaign company name is required")
)

// Campaign is partner-discount metadata. Once redemption tokens reference a
// campaign it should be treated as immutable; deletion is an explicit admin
// action and verification of orphaned tokens fails cleanly instead of
// crashing.
type Campaign struct {
	id              uuid.UUID
	title           string
	companyName     string
	description     string
	discountDetails string
	termsConditions *string
	imageURL        *string
	createdAt       time.Time
	expiresAt       *time.Time
}

func NewCampaign(
	title, companyName, description, discountDetails string,
	termsConditions, imageURL *string,
	expiresAt *time.Time,
) (*Campaign, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}
	if strings.TrimSpace(companyName) == "" {
		return nil, ErrMissingCompany
	}
	return &Campaign{
		id:              uuid.New(),
		title:           title,
		companyName:     companyName,
		description:     description,
		discountDetails: discountDetails,
		termsConditions: termsConditions,
		imageURL:        imageURL,
		expiresAt:       expiresAt,
	}, nil
}

func ReconstructCampaign(
	id uuid.UUID,
	title, companyName, description, discountDetails string,
	termsConditions, imageURL *string,
	createdAt time.Time,
	expiresAt *time.Time,
) *Campaign {
	return &Campaign{
		id:              id,
		title:           title,
		companyName:     companyName,
		description:     description,
		discountDetails: discountDetails,
		termsConditions: termsConditions,
		imageURL:        imageURL,
		createdAt:       createdAt,
		expiresAt:       expiresAt,
	}
}

func (c *Campaign) IsExpiredAt(t time.Time) bool {
	return c.expiresAt != nil && t.After(*c.expiresAt)
}

func (c *Campaign) ValidateRedeemable(t time.Time) error {
	if c.IsExpiredAt(t) {
		return ErrCampaignExpired
	}
	return nil
}

func (c *Campaign) ID() uuid.UUID            { return c.id }
func (c *Campaign) Title() string            { return c.title }
func (c *Campaign) CompanyName() string      { return c.companyName }
func (c *Campaign) Description() string      { return c.description }
func (c *Campaign) DiscountDetails() string  { return c.discountDetails }
func (c *Campaign) TermsConditions() *string { return c.termsConditions }
func (c *Campaign) ImageURL() *string        { return c.imageURL }
func (c *Campaign) CreatedAt() time.Time     { return c.createdAt }
func (c *Campaign) ExpiresAt() *time.Time    { return c.expiresAt }
