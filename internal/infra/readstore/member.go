package readstore

import (
	"context"

	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberReadStore struct {
	pool *pgxpool.Pool
}

func NewMemberReadStore(pool *pgxpool.Pool) *MemberReadStore {
	return &MemberReadStore{pool: pool}
}

var _ queries.MemberReadStore = (*MemberReadStore)(nil)

const memberViewColumns = `id, name, surname, username, profile_photo, is_admin, is_approved, created_at`

const findMemberByIDQuery = `
SELECT ` + memberViewColumns + `
FROM members
WHERE id = $1
`

func (s *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MemberView, error) {
	row := s.pool.QueryRow(ctx, findMemberByIDQuery, id)
	view, err := scanMemberRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to find member", err)
	}
	return view, nil
}

const findMemberByUsernameQuery = `
SELECT ` + memberViewColumns + `, password_hash
FROM members
WHERE username = $1
`

func (s *MemberReadStore) FindByUsername(ctx context.Context, username string) (*queries.MemberView, string, error) {
	var (
		v    queries.MemberView
		hash string
	)
	row := s.pool.QueryRow(ctx, findMemberByUsernameQuery, username)
	err := row.Scan(&v.ID, &v.Name, &v.Surname, &v.Username, &v.ProfilePhoto, &v.IsAdmin, &v.IsApproved, &v.CreatedAt, &hash)
	if err != nil {
		return nil, "", wrapPgErr("failed to find member by username", err)
	}
	return &v, hash, nil
}

const findApprovedMembersQuery = `
SELECT ` + memberViewColumns + `
FROM members
WHERE is_approved = true
ORDER BY surname, name
`

func (s *MemberReadStore) FindApproved(ctx context.Context) ([]*queries.MemberView, error) {
	return s.queryMembers(ctx, findApprovedMembersQuery)
}

const findPendingMembersQuery = `
SELECT ` + memberViewColumns + `
FROM members
WHERE is_approved = false
ORDER BY created_at
`

func (s *MemberReadStore) FindPending(ctx context.Context) ([]*queries.MemberView, error) {
	return s.queryMembers(ctx, findPendingMembersQuery)
}

func (s *MemberReadStore) queryMembers(ctx context.Context, query string) ([]*queries.MemberView, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapPgErr("failed to query members", err)
	}
	defer rows.Close()

	var views []*queries.MemberView
	for rows.Next() {
		v, err := scanMemberRow(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan member", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read members", err)
	}
	return views, nil
}

func scanMemberRow(row pgx.Row) (*queries.MemberView, error) {
	var v queries.MemberView
	err := row.Scan(&v.ID, &v.Name, &v.Surname, &v.Username, &v.ProfilePhoto, &v.IsAdmin, &v.IsApproved, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
