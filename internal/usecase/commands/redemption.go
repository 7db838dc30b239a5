package commands

import (
	"context"
	"time"

	"membership-portal/internal/domain/campaign"
	"membership-portal/internal/domain/dues"
	"membership-portal/internal/domain/redemption"
	"membership-portal/internal/infra"
	"membership-portal/internal/infra/metrics"
	"membership-portal/internal/pkg/clock"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound = errs.New("campaign not found")
	ErrCampaignExpired  = errs.New("campaign expired")
	ErrDuesNotCurrent   = errs.New("membership payments are not current")
	ErrTokenGeneration  = errs.New("token generation failed")
)

// Redemption rejection reasons, rendered verbatim to the scanning device.
const (
	ReasonTokenNotFound    = "token not found"
	ReasonTokenAlreadyUsed = "token already used"
	ReasonTokenExpired     = "token expired"
	ReasonCampaignGone     = "campaign not found"
)

type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampaignSnapshot, error)
}

// TokenRepository is the write-side port over the token store. TryClaim must
// be a single conditional update (used = false AND expires_at >= now), never
// read-then-write: two concurrent claims on one token must not both succeed.
type TokenRepository interface {
	Insert(ctx context.Context, token *redemption.Token) error
	TryClaim(ctx context.Context, value string, now time.Time) (*TokenSnapshot, bool, error)
	FindByValue(ctx context.Context, value string) (*TokenSnapshot, error)
}

type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// VerificationResult is always a structured verdict: business rejections are
// data for the partner's confirmation page, never errors.
type VerificationResult struct {
	Valid    bool
	Reason   string
	Member   *VerifiedMember
	Campaign *VerifiedCampaign
}

// VerifiedMember carries only what a human needs to confirm identity at the
// counter. No dues amounts, IBANs, or payment dates ever cross this boundary.
type VerifiedMember struct {
	Name     string
	Surname  string
	Username string
	Photo    *string
}

type VerifiedCampaign struct {
	Title   string
	Company string
}

type RedemptionCommands interface {
	IssueToken(ctx context.Context, memberID, campaignID uuid.UUID) (*IssuedToken, error)
	Redeem(ctx context.Context, tokenValue string) (*VerificationResult, error)
}

type redemptionCommandsImpl struct {
	campaignRepo    CampaignRepository
	tokenRepo       TokenRepository
	duesRepo        DuesRepository
	memberReadStore queries.MemberReadStore
	clock           clock.Clock
	tokenTTL        time.Duration
}

func NewRedemptionCommands(
	campaignRepo CampaignRepository,
	tokenRepo TokenRepository,
	duesRepo DuesRepository,
	memberReadStore queries.MemberReadStore,
	clock clock.Clock,
	tokenTTL time.Duration,
) RedemptionCommands {
	return &redemptionCommandsImpl{
		campaignRepo:    campaignRepo,
		tokenRepo:       tokenRepo,
		duesRepo:        duesRepo,
		memberReadStore: memberReadStore,
		clock:           clock,
		tokenTTL:        tokenTTL,
	}
}

// IssueToken checks eligibility once, at issuance. A later payment reversal
// leaves already-issued tokens valid until they expire or are used; the
// 15-minute window makes that staleness acceptable and keeps the verifier
// free of any live ledger dependency.
func (r *redemptionCommandsImpl) IssueToken(ctx context.Context, memberID, campaignID uuid.UUID) (*IssuedToken, error) {
	now := r.clock.Now()
	start := time.Now()
	result := "failed"
	defer func() {
		metrics.RecordIssuance(result, time.Since(start).Seconds())
	}()

	campaignEntity, err := r.validateAndGetCampaign(ctx, campaignID, now)
	if err != nil {
		return nil, err
	}

	eligible, err := r.isEligible(ctx, memberID, now)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrDuesNotCurrent
	}

	token, err := redemption.NewToken(memberID, campaignEntity.ID(), now, r.tokenTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := r.tokenRepo.Insert(ctx, token); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result = "success"
	return &IssuedToken{
		Token:     token.Value().String(),
		ExpiresAt: token.ExpiresAt(),
	}, nil
}

// Redeem consumes a token at most once. The deciding step is the store-side
// conditional claim; everything after it only shapes the verdict.
func (r *redemptionCommandsImpl) Redeem(ctx context.Context, tokenValue string) (*VerificationResult, error) {
	now := r.clock.Now()
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.RecordRedemption(outcome, time.Since(start).Seconds())
	}()

	claimed, ok, err := r.tokenRepo.TryClaim(ctx, tokenValue, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !ok {
		verdict, classifyErr := r.classifyRejection(ctx, tokenValue)
		if classifyErr != nil {
			return nil, classifyErr
		}
		outcome = verdict.Reason
		return verdict, nil
	}

	memberView, err := r.memberReadStore.FindByID(ctx, claimed.MemberID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	campaignSnapshot, err := r.campaignRepo.FindByID(ctx, claimed.CampaignID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Campaign deleted after issuance: the token is consumed but the
			// verdict fails cleanly.
			outcome = ReasonCampaignGone
			return &VerificationResult{Valid: false, Reason: ReasonCampaignGone}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	outcome = "valid"
	return &VerificationResult{
		Valid: true,
		Member: &VerifiedMember{
			Name:     memberView.Name,
			Surname:  memberView.Surname,
			Username: memberView.Username,
			Photo:    memberView.ProfilePhoto,
		},
		Campaign: &VerifiedCampaign{
			Title:   campaignSnapshot.Title,
			Company: campaignSnapshot.CompanyName,
		},
	}, nil
}

// classifyRejection runs after a failed claim. A concurrent winner between
// the claim and this read still shows used = true, so a lost race reports
// "token already used", exactly like any other replay.
func (r *redemptionCommandsImpl) classifyRejection(ctx context.Context, tokenValue string) (*VerificationResult, error) {
	snapshot, err := r.tokenRepo.FindByValue(ctx, tokenValue)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &VerificationResult{Valid: false, Reason: ReasonTokenNotFound}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.Used {
		return &VerificationResult{Valid: false, Reason: ReasonTokenAlreadyUsed}, nil
	}
	return &VerificationResult{Valid: false, Reason: ReasonTokenExpired}, nil
}

func (r *redemptionCommandsImpl) validateAndGetCampaign(ctx context.Context, campaignID uuid.UUID, now time.Time) (*campaign.Campaign, error) {
	snapshot, err := r.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	campaignEntity := campaign.ReconstructCampaign(
		snapshot.ID,
		snapshot.Title,
		snapshot.CompanyName,
		snapshot.Description,
		snapshot.DiscountDetails,
		snapshot.TermsConditions,
		snapshot.ImageURL,
		snapshot.CreatedAt,
		snapshot.ExpiresAt,
	)

	if err := campaignEntity.ValidateRedeemable(now); err != nil {
		return nil, ErrCampaignExpired
	}

	return campaignEntity, nil
}

func (r *redemptionCommandsImpl) isEligible(ctx context.Context, memberID uuid.UUID, now time.Time) (bool, error) {
	snapshots, err := r.duesRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	records := make([]*dues.Record, 0, len(snapshots))
	for _, s := range snapshots {
		records = append(records, dues.ReconstructRecord(
			s.ID, s.MemberID, dues.Month(s.Month), s.Year, s.Amount, s.IsPaid, s.PaymentDate, s.IBAN,
		))
	}

	return dues.Eligible(records, now), nil
}
