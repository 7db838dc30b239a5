//go:build unit

package dues_test

import (
	"testing"
	"time"

	"membership-portal/internal/domain/dues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIBAN = "TR12 3456 7890 1234 5678 9012 34"

func TestNewRecord(t *testing.T) {
	memberID := uuid.New()

	t.Run("valid record", func(t *testing.T) {
		rec, err := dues.NewRecord(memberID, dues.October, 2025, 1000, testIBAN)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rec.ID())
		assert.False(t, rec.IsPaid())
		assert.Nil(t, rec.PaymentDate())
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		_, err := dues.NewRecord(memberID, dues.Month("July"), 2025, 1000, testIBAN)
		assert.ErrorIs(t, err, dues.ErrInvalidMonth)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := dues.NewRecord(memberID, dues.October, 2025, 0, testIBAN)
		assert.ErrorIs(t, err, dues.ErrInvalidAmount)
	})
}

func TestMarkPaid(t *testing.T) {
	rec, err := dues.NewRecord(uuid.New(), dues.October, 2025, 1000, testIBAN)
	require.NoError(t, err)

	first := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)
	rec.MarkPaid(first)
	require.True(t, rec.IsPaid())
	require.NotNil(t, rec.PaymentDate())
	assert.Equal(t, first, *rec.PaymentDate())

	t.Run("repeat pay keeps original payment date", func(t *testing.T) {
		later := first.Add(48 * time.Hour)
		rec.MarkPaid(later)
		assert.True(t, rec.IsPaid())
		assert.Equal(t, first, *rec.PaymentDate())
	})

	t.Run("unpay clears state", func(t *testing.T) {
		rec.MarkUnpaid()
		assert.False(t, rec.IsPaid())
		assert.Nil(t, rec.PaymentDate())
	})

	t.Run("pay after unpay stamps a new date", func(t *testing.T) {
		again := first.Add(96 * time.Hour)
		rec.MarkPaid(again)
		require.NotNil(t, rec.PaymentDate())
		assert.Equal(t, again, *rec.PaymentDate())
	})
}

func TestIsPastDueAt(t *testing.T) {
	memberID := uuid.New()
	octRecord, err := dues.NewRecord(memberID, dues.October, 2025, 1000, testIBAN)
	require.NoError(t, err)

	cases := []struct {
		name    string
		now     time.Time
		pastDue bool
	}{
		{"before the record's month", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), false},
		{"first day of the record's month", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), false},
		{"last day of the record's month", time.Date(2025, 10, 31, 23, 59, 59, 0, time.UTC), false},
		{"first day of the following month", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), true},
		{"the following year", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.pastDue, octRecord.IsPastDueAt(tc.now))
		})
	}

	t.Run("spring slot of the academic year", func(t *testing.T) {
		febRecord, err := dues.NewRecord(memberID, dues.February, 2026, 1000, testIBAN)
		require.NoError(t, err)

		assert.False(t, febRecord.IsPastDueAt(time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)))
		assert.False(t, febRecord.IsPastDueAt(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)))
		assert.True(t, febRecord.IsPastDueAt(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestNewAcademicYearLedger(t *testing.T) {
	memberID := uuid.New()

	ledger, err := dues.NewAcademicYearLedger(memberID, 2025, 1000, testIBAN)
	require.NoError(t, err)
	require.Len(t, ledger, 10)

	t.Run("follows the September-first order", func(t *testing.T) {
		for i, rec := range ledger {
			assert.Equal(t, dues.AcademicYearMonths[i], rec.Month())
			assert.Equal(t, memberID, rec.MemberID())
			assert.False(t, rec.IsPaid())
		}
	})

	t.Run("splits calendar years at January", func(t *testing.T) {
		for _, rec := range ledger {
			if rec.Month().Calendar() >= time.September {
				assert.Equal(t, 2025, rec.Year(), "autumn month %s", rec.Month())
			} else {
				assert.Equal(t, 2026, rec.Year(), "spring month %s", rec.Month())
			}
		}
	})
}
