package repository

import (
	"context"
	"errors"
	"time"

	"membership-portal/internal/domain/redemption"
	"membership-portal/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

var _ commands.TokenRepository = (*TokenRepository)(nil)

const tokenColumns = `token, campaign_id, member_id, created_at, expires_at, used, used_at`

const insertTokenQuery = `
INSERT INTO redemption_tokens (token, campaign_id, member_id, created_at, expires_at, used, used_at)
VALUES ($1, $2, $3, $4, $5, false, NULL)
`

func (r *TokenRepository) Insert(ctx context.Context, token *redemption.Token) error {
	_, err := r.pool.Exec(ctx, insertTokenQuery,
		token.Value().String(),
		token.CampaignID(),
		token.MemberID(),
		token.CreatedAt(),
		token.ExpiresAt(),
	)
	if err != nil {
		return wrapPgErr("failed to insert redemption token", err)
	}
	return nil
}

// The WHERE guard makes the claim atomic: of any number of concurrent calls
// for the same token exactly one sees a row come back. No prior SELECT, no
// advisory lock, no transaction needed.
const claimTokenQuery = `
UPDATE redemption_tokens
SET used = true, used_at = $2
WHERE token = $1 AND used = false AND expires_at >= $2
RETURNING ` + tokenColumns

func (r *TokenRepository) TryClaim(ctx context.Context, value string, now time.Time) (*commands.TokenSnapshot, bool, error) {
	row := r.pool.QueryRow(ctx, claimTokenQuery, value, now)
	snapshot, err := scanTokenRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, wrapPgErr("failed to claim redemption token", err)
	}
	return snapshot, true, nil
}

const findTokenByValueQuery = `
SELECT ` + tokenColumns + `
FROM redemption_tokens
WHERE token = $1
`

func (r *TokenRepository) FindByValue(ctx context.Context, value string) (*commands.TokenSnapshot, error) {
	row := r.pool.QueryRow(ctx, findTokenByValueQuery, value)
	snapshot, err := scanTokenRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to find redemption token", err)
	}
	return snapshot, nil
}

func scanTokenRow(row pgx.Row) (*commands.TokenSnapshot, error) {
	var s commands.TokenSnapshot
	err := row.Scan(&s.Value, &s.CampaignID, &s.MemberID, &s.CreatedAt, &s.ExpiresAt, &s.Used, &s.UsedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
