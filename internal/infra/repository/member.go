package repository

import (
	"context"

	"membership-portal/internal/domain/member"
	"membership-portal/internal/infra"
	"membership-portal/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

var _ commands.MemberWriteRepository = (*MemberRepository)(nil)

const insertMemberQuery = `
INSERT INTO members (id, name, surname, username, password_hash, profile_photo, is_admin, is_approved, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
`

func (r *MemberRepository) Insert(ctx context.Context, tx pgx.Tx, m *member.Member) error {
	_, err := tx.Exec(ctx, insertMemberQuery,
		m.ID(),
		m.Name(),
		m.Surname(),
		m.Username().String(),
		m.PasswordHash(),
		m.ProfilePhoto(),
		m.IsAdmin(),
		m.IsApproved(),
	)
	if err != nil {
		return wrapPgErr("failed to insert member", err)
	}
	return nil
}

const approveMemberQuery = `
UPDATE members SET is_approved = true WHERE id = $1
`

func (r *MemberRepository) SetApproved(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, approveMemberQuery, id)
	if err != nil {
		return wrapPgErr("failed to approve member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}
