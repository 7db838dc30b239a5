//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"membership-portal/internal/domain/campaign"
	"membership-portal/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign(t *testing.T) {
	t.Run("valid campaign", func(t *testing.T) {
		c, err := campaign.NewCampaign("Coffee discount", "Cafe Corner", "20% off", "Show QR at the till", nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Coffee discount", c.Title())
		assert.Equal(t, "Cafe Corner", c.CompanyName())
		assert.Nil(t, c.ExpiresAt())
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := campaign.NewCampaign("  ", "Cafe Corner", "", "", nil, nil, nil)
		assert.ErrorIs(t, err, campaign.ErrMissingTitle)
	})

	t.Run("rejects blank company", func(t *testing.T) {
		_, err := campaign.NewCampaign("Coffee discount", "", "", "", nil, nil, nil)
		assert.ErrorIs(t, err, campaign.ErrMissingCompany)
	})
}

func TestCampaignExpiry(t *testing.T) {
	deadline := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	c, err := campaign.NewCampaign("Coffee discount", "Cafe Corner", "", "", nil, nil, ptr.To(deadline))
	require.NoError(t, err)

	t.Run("redeemable until the deadline", func(t *testing.T) {
		assert.False(t, c.IsExpiredAt(deadline.Add(-time.Hour)))
		assert.False(t, c.IsExpiredAt(deadline))
		assert.NoError(t, c.ValidateRedeemable(deadline))
	})

	t.Run("expired past the deadline", func(t *testing.T) {
		assert.True(t, c.IsExpiredAt(deadline.Add(time.Second)))
		assert.ErrorIs(t, c.ValidateRedeemable(deadline.Add(time.Second)), campaign.ErrCampaignExpired)
	})

	t.Run("no deadline never expires", func(t *testing.T) {
		open, err := campaign.NewCampaign("Open ended", "Cafe Corner", "", "", nil, nil, nil)
		require.NoError(t, err)
		assert.False(t, open.IsExpiredAt(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}
