//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"membership-portal/internal/domain/redemption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	memberID := uuid.New()
	campaignID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := redemption.NewToken(memberID, campaignID, now, 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, memberID, token.MemberID())
	assert.Equal(t, campaignID, token.CampaignID())
	assert.Equal(t, now.Add(15*time.Minute), token.ExpiresAt())
	assert.False(t, token.Used())
	assert.NotEmpty(t, token.Value().String())

	t.Run("values are unique per issuance", func(t *testing.T) {
		other, err := redemption.NewToken(memberID, campaignID, now, 15*time.Minute)
		require.NoError(t, err)
		assert.NotEqual(t, token.Value(), other.Value())
	})

	t.Run("non-positive ttl falls back to the default window", func(t *testing.T) {
		fallback, err := redemption.NewToken(memberID, campaignID, now, 0)
		require.NoError(t, err)
		assert.Equal(t, now.Add(redemption.TokenTTL), fallback.ExpiresAt())
	})
}

func TestTokenRedeemability(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := redemption.NewToken(uuid.New(), uuid.New(), issuedAt, 15*time.Minute)
	require.NoError(t, err)

	deadline := issuedAt.Add(15 * time.Minute)

	cases := []struct {
		name       string
		at         time.Time
		redeemable bool
	}{
		{"immediately after issuance", issuedAt, true},
		{"one second before expiry", deadline.Add(-time.Second), true},
		{"exactly at expiry", deadline, true},
		{"one second past expiry", deadline.Add(time.Second), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.redeemable, token.IsRedeemableAt(tc.at))
		})
	}
}

func TestStatusAt(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := issuedAt.Add(15 * time.Minute)

	t.Run("fresh token is issued", func(t *testing.T) {
		token, err := redemption.NewToken(uuid.New(), uuid.New(), issuedAt, 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, redemption.StatusIssued, token.StatusAt(issuedAt.Add(time.Minute)))
	})

	t.Run("past the window it reads expired", func(t *testing.T) {
		token, err := redemption.NewToken(uuid.New(), uuid.New(), issuedAt, 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, redemption.StatusExpired, token.StatusAt(deadline.Add(time.Hour)))
	})

	t.Run("used dominates expired", func(t *testing.T) {
		usedAt := deadline.Add(-time.Minute)
		token := redemption.ReconstructToken(
			"dG9rZW4", uuid.New(), uuid.New(), issuedAt, deadline, true, &usedAt,
		)
		assert.Equal(t, redemption.StatusUsed, token.StatusAt(deadline.Add(time.Hour)))
		assert.False(t, token.IsRedeemableAt(deadline.Add(-5*time.Minute)))
	})
}

func TestParseTokenValue(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		v, err := redemption.NewTokenValue()
		require.NoError(t, err)

		parsed, err := redemption.ParseTokenValue(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, err := redemption.ParseTokenValue("")
		assert.ErrorIs(t, err, redemption.ErrInvalidTokenValue)
	})

	t.Run("rejects non-base64 input", func(t *testing.T) {
		_, err := redemption.ParseTokenValue("not!valid!base64!")
		assert.ErrorIs(t, err, redemption.ErrInvalidTokenValue)
	})
}
