package repository

import (
	"context"

	"membership-portal/internal/domain/campaign"
	"membership-portal/internal/infra"
	"membership-portal/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var (
	_ commands.CampaignRepository      = (*CampaignRepository)(nil)
	_ commands.CampaignWriteRepository = (*CampaignRepository)(nil)
)

const campaignColumns = `id, title, company_name, description, discount_details, terms_conditions, image_url, created_at, expires_at`

const findCampaignByIDQuery = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

func (r *CampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CampaignSnapshot, error) {
	row := r.pool.QueryRow(ctx, findCampaignByIDQuery, id)
	snapshot, err := scanCampaignRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to find campaign", err)
	}
	return snapshot, nil
}

const insertCampaignQuery = `
INSERT INTO campaigns (id, title, company_name, description, discount_details, terms_conditions, image_url, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8)
`

func (r *CampaignRepository) Insert(ctx context.Context, c *campaign.Campaign) error {
	_, err := r.pool.Exec(ctx, insertCampaignQuery,
		c.ID(),
		c.Title(),
		c.CompanyName(),
		c.Description(),
		c.DiscountDetails(),
		c.TermsConditions(),
		c.ImageURL(),
		c.ExpiresAt(),
	)
	if err != nil {
		return wrapPgErr("failed to insert campaign", err)
	}
	return nil
}

const updateCampaignQuery = `
UPDATE campaigns
SET title = $2, company_name = $3, description = $4, discount_details = $5,
    terms_conditions = $6, image_url = $7, expires_at = $8
WHERE id = $1
RETURNING ` + campaignColumns

func (r *CampaignRepository) Update(ctx context.Context, c *campaign.Campaign) (*commands.CampaignSnapshot, error) {
	row := r.pool.QueryRow(ctx, updateCampaignQuery,
		c.ID(),
		c.Title(),
		c.CompanyName(),
		c.Description(),
		c.DiscountDetails(),
		c.TermsConditions(),
		c.ImageURL(),
		c.ExpiresAt(),
	)
	snapshot, err := scanCampaignRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to update campaign", err)
	}
	return snapshot, nil
}

const deleteCampaignQuery = `
DELETE FROM campaigns WHERE id = $1
`

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteCampaignQuery, id)
	if err != nil {
		return wrapPgErr("failed to delete campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCampaignRow(row pgx.Row) (*commands.CampaignSnapshot, error) {
	var s commands.CampaignSnapshot
	err := row.Scan(
		&s.ID, &s.Title, &s.CompanyName, &s.Description, &s.DiscountDetails,
		&s.TermsConditions, &s.ImageURL, &s.CreatedAt, &s.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
