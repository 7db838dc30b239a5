package redemption

import (
	"time"

	"github.com/google/uuid"
)

// TokenTTL is the fixed validity window stamped at issuance. It is never
// extended; expiry is enforced by comparison at redemption time, not by any
// background sweep.
const TokenTTL = 15 * time.Minute

type Status string

const (
	StatusIssued  Status = "issued"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

// Token is a single-use proof of issuance-time eligibility, scoped to one
// (member, campaign) pair. The used flag transitions false to true exactly
// once and is never reversed; tokens are retained for audit rather than
// deleted.
type Token struct {
	value      TokenValue
	campaignID uuid.UUID
	memberID   uuid.UUID
	createdAt  time.Time
	expiresAt  time.Time
	used       bool
	usedAt     *time.Time
}

func NewToken(memberID, campaignID uuid.UUID, now time.Time, ttl time.Duration) (*Token, error) {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	value, err := NewTokenValue()
	if err != nil {
		return nil, err
	}
	return &Token{
		value:      value,
		campaignID: campaignID,
		memberID:   memberID,
		createdAt:  now,
		expiresAt:  now.Add(ttl),
		used:       false,
	}, nil
}

func ReconstructToken(
	value TokenValue,
	campaignID, memberID uuid.UUID,
	createdAt, expiresAt time.Time,
	used bool,
	usedAt *time.Time,
) *Token {
	return &Token{
		value:      value,
		campaignID: campaignID,
		memberID:   memberID,
		createdAt:  createdAt,
		expiresAt:  expiresAt,
		used:       used,
		usedAt:     usedAt,
	}
}

// StatusAt derives the token state: used dominates expired, so a token
// redeemed just before its deadline reads as used afterwards.
func (t *Token) StatusAt(now time.Time) Status {
	if t.used {
		return StatusUsed
	}
	if now.After(t.expiresAt) {
		return StatusExpired
	}
	return StatusIssued
}

// IsRedeemableAt mirrors the store-side claim guard: unused and not past
// expiry. expires_at itself is still redeemable.
func (t *Token) IsRedeemableAt(now time.Time) bool {
	return !t.used && !now.After(t.expiresAt)
}

func (t *Token) Value() TokenValue      { return t.value }
func (t *Token) CampaignID() uuid.UUID  { return t.campaignID }
func (t *Token) MemberID() uuid.UUID    { return t.memberID }
func (t *Token) CreatedAt() time.Time   { return t.createdAt }
func (t *Token) ExpiresAt() time.Time   { return t.expiresAt }
func (t *Token) Used() bool             { return t.used }
func (t *Token) UsedAt() *time.Time     { return t.usedAt }
