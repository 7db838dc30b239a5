//go:build unit

package queries_test

import (
	"context"
	"testing"

	"membership-portal/internal/usecase/queries"
	queriesmock "membership-portal/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListByMemberOrdersLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockDuesReadStore(ctrl)
	duesQueries := queries.NewDuesQueries(store)

	memberID := uuid.New()

	view := func(month string, year int) *queries.DuesRecordView {
		return &queries.DuesRecordView{
			ID: uuid.New(), MemberID: memberID, Month: month, Year: year,
			Amount: 1000, IBAN: "TR12 3456 7890 1234 5678 9012 34",
		}
	}

	// Store returns rows in arbitrary order.
	store.EXPECT().FindByMemberID(gomock.Any(), memberID).Return([]*queries.DuesRecordView{
		view("June", 2026),
		view("January", 2026),
		view("September", 2025),
		view("December", 2025),
		view("February", 2026),
		view("October", 2025),
	}, nil)

	rows, err := duesQueries.ListByMember(context.Background(), memberID)
	require.NoError(t, err)

	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.Month)
	}
	want := []string{"September", "October", "December", "January", "February", "June"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ledger order mismatch (-want +got):\n%s", diff)
	}

	t.Run("years sort before months", func(t *testing.T) {
		for i := 1; i < len(rows); i++ {
			assert.LessOrEqual(t, rows[i-1].Year, rows[i].Year)
		}
	})
}
