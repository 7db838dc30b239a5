package commands

import (
	"context"

	"membership-portal/internal/domain/campaign"
	reqdto "membership-portal/internal/handler/dto/request"
	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidCampaign = errs.New("invalid campaign data")

type CampaignWriteRepository interface {
	Insert(ctx context.Context, c *campaign.Campaign) error
	Update(ctx context.Context, c *campaign.Campaign) (*CampaignSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CampaignCommands interface {
	Create(ctx context.Context, req reqdto.CreateCampaignRequest) (*queries.CampaignView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCampaignRequest) (*queries.CampaignView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type campaignCommandsImpl struct {
	writeRepo CampaignWriteRepository
	readRepo  CampaignRepository
}

func NewCampaignCommands(writeRepo CampaignWriteRepository, readRepo CampaignRepository) CampaignCommands {
	return &campaignCommandsImpl{
		writeRepo: writeRepo,
		readRepo:  readRepo,
	}
}

func (c *campaignCommandsImpl) Create(ctx context.Context, req reqdto.CreateCampaignRequest) (*queries.CampaignView, error) {
	campaignEntity, err := campaign.NewCampaign(
		req.Title,
		req.CompanyName,
		req.Description,
		req.DiscountDetails,
		req.TermsConditions,
		req.ImageURL,
		req.ExpiresAt,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCampaign)
	}

	if err := c.writeRepo.Insert(ctx, campaignEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snapshot, err := c.readRepo.FindByID(ctx, campaignEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toCampaignView(snapshot), nil
}

func (c *campaignCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCampaignRequest) (*queries.CampaignView, error) {
	existing, err := c.readRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated := campaign.ReconstructCampaign(
		existing.ID,
		req.Title,
		req.CompanyName,
		req.Description,
		req.DiscountDetails,
		req.TermsConditions,
		req.ImageURL,
		existing.CreatedAt,
		req.ExpiresAt,
	)

	snapshot, err := c.writeRepo.Update(ctx, updated)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toCampaignView(snapshot), nil
}

func (c *campaignCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.writeRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCampaignNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toCampaignView(s *CampaignSnapshot) *queries.CampaignView {
	return &queries.CampaignView{
		ID:              s.ID,
		Title:           s.Title,
		CompanyName:     s.CompanyName,
		Description:     s.Description,
		DiscountDetails: s.DiscountDetails,
		TermsConditions: s.TermsConditions,
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
		ExpiresAt:       s.ExpiresAt,
	}
}
