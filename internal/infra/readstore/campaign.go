package readstore

import (
	"context"

	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignReadStore struct {
	pool *pgxpool.Pool
}

func NewCampaignReadStore(pool *pgxpool.Pool) *CampaignReadStore {
	return &CampaignReadStore{pool: pool}
}

var _ queries.CampaignReadStore = (*CampaignReadStore)(nil)

const campaignViewColumns = `id, title, company_name, description, discount_details, terms_conditions, image_url, created_at, expires_at`

const findCampaignByIDQuery = `
SELECT ` + campaignViewColumns + `
FROM campaigns
WHERE id = $1
`

func (s *CampaignReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampaignView, error) {
	row := s.pool.QueryRow(ctx, findCampaignByIDQuery, id)
	view, err := scanCampaignRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to find campaign", err)
	}
	return view, nil
}

const findAllCampaignsQuery = `
SELECT ` + campaignViewColumns + `
FROM campaigns
ORDER BY created_at DESC
`

func (s *CampaignReadStore) FindAll(ctx context.Context) ([]*queries.CampaignView, error) {
	rows, err := s.pool.Query(ctx, findAllCampaignsQuery)
	if err != nil {
		return nil, wrapPgErr("failed to query campaigns", err)
	}
	defer rows.Close()

	var views []*queries.CampaignView
	for rows.Next() {
		v, err := scanCampaignRow(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan campaign", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read campaigns", err)
	}
	return views, nil
}

func scanCampaignRow(row pgx.Row) (*queries.CampaignView, error) {
	var v queries.CampaignView
	err := row.Scan(
		&v.ID, &v.Title, &v.CompanyName, &v.Description, &v.DiscountDetails,
		&v.TermsConditions, &v.ImageURL, &v.CreatedAt, &v.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
