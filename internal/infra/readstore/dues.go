package readstore

import (
	"context"

	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DuesReadStore struct {
	pool *pgxpool.Pool
}

func NewDuesReadStore(pool *pgxpool.Pool) *DuesReadStore {
	return &DuesReadStore{pool: pool}
}

var _ queries.DuesReadStore = (*DuesReadStore)(nil)

const duesViewColumns = `id, member_id, month, year, amount, is_paid, payment_date, iban`

const findDuesByMemberQuery = `
SELECT ` + duesViewColumns + `
FROM dues_records
WHERE member_id = $1
`

func (s *DuesReadStore) FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]*queries.DuesRecordView, error) {
	rows, err := s.pool.Query(ctx, findDuesByMemberQuery, memberID)
	if err != nil {
		return nil, wrapPgErr("failed to query dues records", err)
	}
	defer rows.Close()

	return scanDuesRows(rows)
}

const findAllDuesQuery = `
SELECT ` + duesViewColumns + `
FROM dues_records
`

func (s *DuesReadStore) FindAll(ctx context.Context) ([]*queries.DuesRecordView, error) {
	rows, err := s.pool.Query(ctx, findAllDuesQuery)
	if err != nil {
		return nil, wrapPgErr("failed to query dues records", err)
	}
	defer rows.Close()

	return scanDuesRows(rows)
}

func scanDuesRows(rows pgx.Rows) ([]*queries.DuesRecordView, error) {
	var views []*queries.DuesRecordView
	for rows.Next() {
		var v queries.DuesRecordView
		err := rows.Scan(&v.ID, &v.MemberID, &v.Month, &v.Year, &v.Amount, &v.IsPaid, &v.PaymentDate, &v.IBAN)
		if err != nil {
			return nil, wrapPgErr("failed to scan dues record", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read dues records", err)
	}
	return views, nil
}
