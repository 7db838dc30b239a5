package queries

import (
	"context"
	"sort"

	"membership-portal/internal/domain/dues"

	"github.com/google/uuid"
)

type DuesReadStore interface {
	FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]*DuesRecordView, error)
	FindAll(ctx context.Context) ([]*DuesRecordView, error)
}

type DuesQueries interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*DuesRecordView, error)
	ListAll(ctx context.Context) ([]*DuesRecordView, error)
}

type duesQueriesImpl struct {
	readStore DuesReadStore
}

func NewDuesQueries(readStore DuesReadStore) DuesQueries {
	return &duesQueriesImpl{readStore: readStore}
}

func (q *duesQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*DuesRecordView, error) {
	rows, err := q.readStore.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	sortLedger(rows)
	return rows, nil
}

func (q *duesQueriesImpl) ListAll(ctx context.Context) ([]*DuesRecordView, error) {
	rows, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sortLedger(rows)
	return rows, nil
}

// Ledger order: year first, then the fixed September-first month sequence.
func sortLedger(rows []*DuesRecordView) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return dues.Month(rows[i].Month).AcademicIndex() < dues.Month(rows[j].Month).AcademicIndex()
	})
}
