//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"membership-portal/internal/domain/redemption"
	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/clock"
	"membership-portal/internal/usecase/commands"
	"membership-portal/internal/usecase/queries"
	commandsmock "membership-portal/tests/mock/commands"
	queriesmock "membership-portal/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	issuedAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	tokenTTL = 15 * time.Minute
)

type redemptionFixture struct {
	campaignRepo *commandsmock.MockCampaignRepository
	tokenRepo    *commandsmock.MockTokenRepository
	duesRepo     *commandsmock.MockDuesRepository
	memberStore  *queriesmock.MockMemberReadStore
	clock        *clock.MockClock
	commands     commands.RedemptionCommands
}

func newRedemptionFixture(t *testing.T) *redemptionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &redemptionFixture{
		campaignRepo: commandsmock.NewMockCampaignRepository(ctrl),
		tokenRepo:    commandsmock.NewMockTokenRepository(ctrl),
		duesRepo:     commandsmock.NewMockDuesRepository(ctrl),
		memberStore:  queriesmock.NewMockMemberReadStore(ctrl),
		clock:        clock.NewMockClock(issuedAt),
	}
	f.commands = commands.NewRedemptionCommands(
		f.campaignRepo, f.tokenRepo, f.duesRepo, f.memberStore, f.clock, tokenTTL,
	)
	return f
}

func campaignSnapshot(id uuid.UUID, expiresAt *time.Time) *commands.CampaignSnapshot {
	return &commands.CampaignSnapshot{
		ID:          id,
		Title:       "Coffee discount",
		CompanyName: "Cafe Corner",
		CreatedAt:   issuedAt.Add(-24 * time.Hour),
		ExpiresAt:   expiresAt,
	}
}

func paidLedger(memberID uuid.UUID) []*commands.DuesRecordSnapshot {
	paidAt := issuedAt.Add(-30 * 24 * time.Hour)
	months := []string{"September", "October", "November", "December", "January", "February"}
	snapshots := make([]*commands.DuesRecordSnapshot, 0, len(months))
	for _, m := range months {
		year := 2025
		if m == "January" || m == "February" {
			year = 2026
		}
		snapshots = append(snapshots, &commands.DuesRecordSnapshot{
			ID:          uuid.New(),
			MemberID:    memberID,
			Month:       m,
			Year:        year,
			Amount:      1000,
			IsPaid:      true,
			PaymentDate: &paidAt,
			IBAN:        "TR12 3456 7890 1234 5678 9012 34",
		})
	}
	return snapshots
}

func TestIssueToken(t *testing.T) {
	memberID := uuid.New()
	campaignID := uuid.New()

	t.Run("issues a token for an eligible member", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(campaignSnapshot(campaignID, nil), nil)
		f.duesRepo.EXPECT().FindByMemberID(gomock.Any(), memberID).
			Return(paidLedger(memberID), nil)

		var inserted *redemption.Token
		f.tokenRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tok *redemption.Token) error {
				inserted = tok
				return nil
			})

		issued, err := f.commands.IssueToken(context.Background(), memberID, campaignID)
		require.NoError(t, err)
		require.NotNil(t, inserted)
		assert.Equal(t, inserted.Value().String(), issued.Token)
		assert.Equal(t, issuedAt.Add(tokenTTL), issued.ExpiresAt)
		assert.Equal(t, memberID, inserted.MemberID())
		assert.Equal(t, campaignID, inserted.CampaignID())
	})

	t.Run("refuses when past dues are unpaid", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(campaignSnapshot(campaignID, nil), nil)

		ledger := paidLedger(memberID)
		ledger[1].IsPaid = false
		ledger[1].PaymentDate = nil
		f.duesRepo.EXPECT().FindByMemberID(gomock.Any(), memberID).Return(ledger, nil)

		_, err := f.commands.IssueToken(context.Background(), memberID, campaignID)
		assert.ErrorIs(t, err, commands.ErrDuesNotCurrent)
	})

	t.Run("a member with no ledger is eligible", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(campaignSnapshot(campaignID, nil), nil)
		f.duesRepo.EXPECT().FindByMemberID(gomock.Any(), memberID).Return(nil, nil)
		f.tokenRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.commands.IssueToken(context.Background(), memberID, campaignID)
		assert.NoError(t, err)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(nil, infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound))

		_, err := f.commands.IssueToken(context.Background(), memberID, campaignID)
		assert.ErrorIs(t, err, commands.ErrCampaignNotFound)
	})

	t.Run("expired campaign", func(t *testing.T) {
		f := newRedemptionFixture(t)
		expired := issuedAt.Add(-time.Hour)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(campaignSnapshot(campaignID, &expired), nil)

		_, err := f.commands.IssueToken(context.Background(), memberID, campaignID)
		assert.ErrorIs(t, err, commands.ErrCampaignExpired)
	})
}

func claimedSnapshot(memberID, campaignID uuid.UUID, value string) *commands.TokenSnapshot {
	usedAt := issuedAt
	return &commands.TokenSnapshot{
		Value:      value,
		CampaignID: campaignID,
		MemberID:   memberID,
		CreatedAt:  issuedAt.Add(-time.Minute),
		ExpiresAt:  issuedAt.Add(tokenTTL),
		Used:       true,
		UsedAt:     &usedAt,
	}
}

func TestRedeem(t *testing.T) {
	memberID := uuid.New()
	campaignID := uuid.New()
	const tokenValue = "dG9rZW4tdmFsdWU"

	memberView := &queries.MemberView{
		ID:       memberID,
		Name:     "Ayse",
		Surname:  "Yilmaz",
		Username: "ayse.yilmaz",
	}

	t.Run("valid claim returns member and campaign", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.tokenRepo.EXPECT().TryClaim(gomock.Any(), tokenValue, issuedAt).
			Return(claimedSnapshot(memberID, campaignID, tokenValue), true, nil)
		f.memberStore.EXPECT().FindByID(gomock.Any(), memberID).Return(memberView, nil)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(campaignSnapshot(campaignID, nil), nil)

		result, err := f.commands.Redeem(context.Background(), tokenValue)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		require.NotNil(t, result.Member)
		assert.Equal(t, "Ayse", result.Member.Name)
		assert.Equal(t, "ayse.yilmaz", result.Member.Username)
		require.NotNil(t, result.Campaign)
		assert.Equal(t, "Cafe Corner", result.Campaign.Company)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.tokenRepo.EXPECT().TryClaim(gomock.Any(), tokenValue, issuedAt).Return(nil, false, nil)
		f.tokenRepo.EXPECT().FindByValue(gomock.Any(), tokenValue).
			Return(nil, infra.WrapRepoErr("token not found", nil, infra.KindNotFound))

		result, err := f.commands.Redeem(context.Background(), tokenValue)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, commands.ReasonTokenNotFound, result.Reason)
		assert.Nil(t, result.Member)
	})

	t.Run("replayed token", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.tokenRepo.EXPECT().TryClaim(gomock.Any(), tokenValue, issuedAt).Return(nil, false, nil)
		f.tokenRepo.EXPECT().FindByValue(gomock.Any(), tokenValue).
			Return(claimedSnapshot(memberID, campaignID, tokenValue), nil)

		result, err := f.commands.Redeem(context.Background(), tokenValue)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, commands.ReasonTokenAlreadyUsed, result.Reason)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newRedemptionFixture(t)
		stale := claimedSnapshot(memberID, campaignID, tokenValue)
		stale.Used = false
		stale.UsedAt = nil
		stale.ExpiresAt = issuedAt.Add(-time.Minute)

		f.tokenRepo.EXPECT().TryClaim(gomock.Any(), tokenValue, issuedAt).Return(nil, false, nil)
		f.tokenRepo.EXPECT().FindByValue(gomock.Any(), tokenValue).Return(stale, nil)

		result, err := f.commands.Redeem(context.Background(), tokenValue)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, commands.ReasonTokenExpired, result.Reason)
	})

	t.Run("campaign deleted after issuance", func(t *testing.T) {
		f := newRedemptionFixture(t)
		f.tokenRepo.EXPECT().TryClaim(gomock.Any(), tokenValue, issuedAt).
			Return(claimedSnapshot(memberID, campaignID, tokenValue), true, nil)
		f.memberStore.EXPECT().FindByID(gomock.Any(), memberID).Return(memberView, nil)
		f.campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
			Return(nil, infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound))

		result, err := f.commands.Redeem(context.Background(), tokenValue)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, commands.ReasonCampaignGone, result.Reason)
	})
}

// claimOnceTokenRepo is an in-memory stand-in whose TryClaim performs the same
// compare-and-set the SQL claim does, guarded by a mutex.
type claimOnceTokenRepo struct {
	mu       sync.Mutex
	snapshot commands.TokenSnapshot
}

func (r *claimOnceTokenRepo) Insert(context.Context, *redemption.Token) error { return nil }

func (r *claimOnceTokenRepo) TryClaim(_ context.Context, value string, now time.Time) (*commands.TokenSnapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot.Value != value || r.snapshot.Used || r.snapshot.ExpiresAt.Before(now) {
		return nil, false, nil
	}
	r.snapshot.Used = true
	usedAt := now
	r.snapshot.UsedAt = &usedAt
	claimed := r.snapshot
	return &claimed, true, nil
}

func (r *claimOnceTokenRepo) FindByValue(_ context.Context, value string) (*commands.TokenSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot.Value != value {
		return nil, infra.WrapRepoErr("token not found", nil, infra.KindNotFound)
	}
	found := r.snapshot
	return &found, nil
}

func TestRedeemConcurrency(t *testing.T) {
	memberID := uuid.New()
	campaignID := uuid.New()
	const tokenValue = "Y29uY3VycmVudC10b2tlbg"

	ctrl := gomock.NewController(t)
	campaignRepo := commandsmock.NewMockCampaignRepository(ctrl)
	duesRepo := commandsmock.NewMockDuesRepository(ctrl)
	memberStore := queriesmock.NewMockMemberReadStore(ctrl)

	campaignRepo.EXPECT().FindByID(gomock.Any(), campaignID).
		Return(campaignSnapshot(campaignID, nil), nil).AnyTimes()
	memberStore.EXPECT().FindByID(gomock.Any(), memberID).
		Return(&queries.MemberView{ID: memberID, Name: "Ayse", Surname: "Yilmaz", Username: "ayse.yilmaz"}, nil).AnyTimes()

	tokenRepo := &claimOnceTokenRepo{
		snapshot: commands.TokenSnapshot{
			Value:      tokenValue,
			CampaignID: campaignID,
			MemberID:   memberID,
			CreatedAt:  issuedAt,
			ExpiresAt:  issuedAt.Add(tokenTTL),
		},
	}

	redemptionCommands := commands.NewRedemptionCommands(
		campaignRepo, tokenRepo, duesRepo, memberStore, clock.NewMockClock(issuedAt), tokenTTL,
	)

	const attempts = 32
	results := make([]*commands.VerificationResult, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			result, err := redemptionCommands.Redeem(context.Background(), tokenValue)
			require.NoError(t, err)
			results[idx] = result
		}(i)
	}
	wg.Wait()

	validCount := 0
	for _, result := range results {
		if result.Valid {
			validCount++
		} else {
			assert.Equal(t, commands.ReasonTokenAlreadyUsed, result.Reason)
		}
	}
	assert.Equal(t, 1, validCount, "exactly one concurrent redemption may succeed")
}
