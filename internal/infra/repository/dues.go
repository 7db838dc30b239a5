package repository

import (
	"context"
	"time"

	"membership-portal/internal/domain/dues"
	"membership-portal/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DuesRepository struct {
	pool *pgxpool.Pool
}

func NewDuesRepository(pool *pgxpool.Pool) *DuesRepository {
	return &DuesRepository{pool: pool}
}

var (
	_ commands.DuesRepository       = (*DuesRepository)(nil)
	_ commands.DuesLedgerRepository = (*DuesRepository)(nil)
)

const duesColumns = `id, member_id, month, year, amount, is_paid, payment_date, iban`

const findDuesByMemberQuery = `
SELECT ` + duesColumns + `
FROM dues_records
WHERE member_id = $1
`

func (r *DuesRepository) FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]*commands.DuesRecordSnapshot, error) {
	rows, err := r.pool.Query(ctx, findDuesByMemberQuery, memberID)
	if err != nil {
		return nil, wrapPgErr("failed to query dues records", err)
	}
	defer rows.Close()

	return scanDuesRows(rows)
}

const insertDuesRecordQuery = `
INSERT INTO dues_records (id, member_id, month, year, amount, is_paid, payment_date, iban)
VALUES ($1, $2, $3, $4, $5, false, NULL, $6)
`

func (r *DuesRepository) InsertLedger(ctx context.Context, tx pgx.Tx, records []*dues.Record) error {
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(insertDuesRecordQuery,
			rec.ID(), rec.MemberID(), rec.Month().String(), rec.Year(), rec.Amount(), rec.IBAN(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return wrapPgErr("failed to insert dues record", err)
		}
	}
	return nil
}

// COALESCE keeps the first payment date: re-paying a paid record is a no-op
// beyond re-asserting is_paid.
const setPaidQuery = `
UPDATE dues_records
SET is_paid = true, payment_date = COALESCE(payment_date, $2)
WHERE id = $1
RETURNING ` + duesColumns

func (r *DuesRepository) SetPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*commands.DuesRecordSnapshot, error) {
	row := r.pool.QueryRow(ctx, setPaidQuery, id, paidAt)
	snapshot, err := scanDuesRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to mark dues record paid", err)
	}
	return snapshot, nil
}

const setUnpaidQuery = `
UPDATE dues_records
SET is_paid = false, payment_date = NULL
WHERE id = $1
RETURNING ` + duesColumns

func (r *DuesRepository) SetUnpaid(ctx context.Context, id uuid.UUID) (*commands.DuesRecordSnapshot, error) {
	row := r.pool.QueryRow(ctx, setUnpaidQuery, id)
	snapshot, err := scanDuesRow(row)
	if err != nil {
		return nil, wrapPgErr("failed to mark dues record unpaid", err)
	}
	return snapshot, nil
}

func scanDuesRow(row pgx.Row) (*commands.DuesRecordSnapshot, error) {
	var s commands.DuesRecordSnapshot
	err := row.Scan(&s.ID, &s.MemberID, &s.Month, &s.Year, &s.Amount, &s.IsPaid, &s.PaymentDate, &s.IBAN)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanDuesRows(rows pgx.Rows) ([]*commands.DuesRecordSnapshot, error) {
	var snapshots []*commands.DuesRecordSnapshot
	for rows.Next() {
		s, err := scanDuesRow(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan dues record", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read dues records", err)
	}
	return snapshots, nil
}
