package dues

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errors.New("dues amount must be positive")

// Record is one member's payment obligation for a single (month, year).
// At most one record exists per (member, month, year); the set is generated
// once at academic-year rollover and mutated only through MarkPaid/MarkUnpaid.
type Record struct {
	id          uuid.UUID
	memberID    uuid.UUID
	month       Month
	year        int
	amount      int64
	isPaid      bool
	paymentDate *time.Time
	iban        string
}

func NewRecord(memberID uuid.UUID, month Month, year int, amount int64, iban string) (*Record, error) {
	if !month.IsValid() {
		return nil, ErrInvalidMonth
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Record{
		id:       uuid.New(),
		memberID: memberID,
		month:    month,
		year:     year,
		amount:   amount,
		iban:     iban,
	}, nil
}

func ReconstructRecord(
	id, memberID uuid.UUID,
	month Month,
	year int,
	amount int64,
	isPaid bool,
	paymentDate *time.Time,
	iban string,
) *Record {
	return &Record{
		id:          id,
		memberID:    memberID,
		month:       month,
		year:        year,
		amount:      amount,
		isPaid:      isPaid,
		paymentDate: paymentDate,
		iban:        iban,
	}
}

// MarkPaid is idempotent: paying an already-paid record keeps the original
// payment date so double-clicks never surface an error or move the date.
func (r *Record) MarkPaid(now time.Time) {
	if r.isPaid {
		return
	}
	r.isPaid = true
	t := now
	r.paymentDate = &t
}

// MarkUnpaid reverses a mistaken payment entry. Administrative override, not
// a refund workflow.
func (r *Record) MarkUnpaid() {
	r.isPaid = false
	r.paymentDate = nil
}

// IsPastDueAt reports whether this record's period lies strictly before the
// calendar month containing now. The in-progress month is not past due.
func (r *Record) IsPastDueAt(now time.Time) bool {
	if r.year != now.Year() {
		return r.year < now.Year()
	}
	return r.month.Calendar() < now.Month()
}

// NewAcademicYearLedger generates the ten records of one academic year
// starting in startYear: September through December carry startYear,
// January through June the following year.
func NewAcademicYearLedger(memberID uuid.UUID, startYear int, amount int64, iban string) ([]*Record, error) {
	records := make([]*Record, 0, len(AcademicYearMonths))
	for _, m := range AcademicYearMonths {
		year := startYear
		if m.Calendar() < time.September {
			year = startYear + 1
		}
		rec, err := NewRecord(memberID, m, year, amount, iban)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Record) ID() uuid.UUID           { return r.id }
func (r *Record) MemberID() uuid.UUID     { return r.memberID }
func (r *Record) Month() Month            { return r.month }
func (r *Record) Year() int               { return r.year }
func (r *Record) Amount() int64           { return r.amount }
func (r *Record) IsPaid() bool            { return r.isPaid }
func (r *Record) PaymentDate() *time.Time { return r.paymentDate }
func (r *Record) IBAN() string            { return r.iban }
