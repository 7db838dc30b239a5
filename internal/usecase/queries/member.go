package queries

import (
	"context"

	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMemberNotFound = errs.New("member not found")

type MemberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
	// FindByUsername also returns the stored password hash for credential checks.
	FindByUsername(ctx context.Context, username string) (*MemberView, string, error)
	FindApproved(ctx context.Context) ([]*MemberView, error)
	FindPending(ctx context.Context) ([]*MemberView, error)
}

type MemberQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
	ListApproved(ctx context.Context) ([]*MemberView, error)
	ListPending(ctx context.Context) ([]*MemberView, error)
}

type memberQueriesImpl struct {
	readStore MemberReadStore
}

func NewMemberQueries(readStore MemberReadStore) MemberQueries {
	return &memberQueriesImpl{readStore: readStore}
}

func (q *memberQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *memberQueriesImpl) ListApproved(ctx context.Context) ([]*MemberView, error) {
	return q.readStore.FindApproved(ctx)
}

func (q *memberQueriesImpl) ListPending(ctx context.Context) ([]*MemberView, error) {
	return q.readStore.FindPending(ctx)
}
