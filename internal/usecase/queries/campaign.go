package queries

import (
	"context"

	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCampaignNotFound = errs.New("campaign not found")

type CampaignReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	FindAll(ctx context.Context) ([]*CampaignView, error)
}

type CampaignQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	List(ctx context.Context) ([]*CampaignView, error)
}

type campaignQueriesImpl struct {
	readStore CampaignReadStore
}

func NewCampaignQueries(readStore CampaignReadStore) CampaignQueries {
	return &campaignQueriesImpl{readStore: readStore}
}

func (q *campaignQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CampaignView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *campaignQueriesImpl) List(ctx context.Context) ([]*CampaignView, error) {
	return q.readStore.FindAll(ctx)
}
