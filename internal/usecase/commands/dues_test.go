//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/clock"
	"membership-portal/internal/usecase/commands"
	commandsmock "membership-portal/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDuesCommands(t *testing.T) {
	now := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)
	recordID := uuid.New()
	memberID := uuid.New()

	newFixture := func(t *testing.T) (*commandsmock.MockDuesRepository, commands.DuesCommands) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockDuesRepository(ctrl)
		return repo, commands.NewDuesCommands(repo, clock.NewMockClock(now))
	}

	snapshot := &commands.DuesRecordSnapshot{
		ID:       recordID,
		MemberID: memberID,
		Month:    "October",
		Year:     2025,
		Amount:   1000,
		IsPaid:   true,
		IBAN:     "TR12 3456 7890 1234 5678 9012 34",
	}

	t.Run("MarkPaid stamps the injected clock's time", func(t *testing.T) {
		repo, duesCommands := newFixture(t)
		paid := *snapshot
		paid.PaymentDate = &now
		repo.EXPECT().SetPaid(gomock.Any(), recordID, now).Return(&paid, nil)

		view, err := duesCommands.MarkPaid(context.Background(), recordID)
		require.NoError(t, err)
		assert.True(t, view.IsPaid)
		require.NotNil(t, view.PaymentDate)
		assert.Equal(t, now, *view.PaymentDate)
	})

	t.Run("MarkPaid surfaces unknown records", func(t *testing.T) {
		repo, duesCommands := newFixture(t)
		repo.EXPECT().SetPaid(gomock.Any(), recordID, now).
			Return(nil, infra.WrapRepoErr("dues record not found", nil, infra.KindNotFound))

		_, err := duesCommands.MarkPaid(context.Background(), recordID)
		assert.ErrorIs(t, err, commands.ErrDuesRecordNotFound)
	})

	t.Run("MarkUnpaid clears payment state", func(t *testing.T) {
		repo, duesCommands := newFixture(t)
		unpaid := *snapshot
		unpaid.IsPaid = false
		unpaid.PaymentDate = nil
		repo.EXPECT().SetUnpaid(gomock.Any(), recordID).Return(&unpaid, nil)

		view, err := duesCommands.MarkUnpaid(context.Background(), recordID)
		require.NoError(t, err)
		assert.False(t, view.IsPaid)
		assert.Nil(t, view.PaymentDate)
	})

	t.Run("MarkUnpaid surfaces unknown records", func(t *testing.T) {
		repo, duesCommands := newFixture(t)
		repo.EXPECT().SetUnpaid(gomock.Any(), recordID).
			Return(nil, infra.WrapRepoErr("dues record not found", nil, infra.KindNotFound))

		_, err := duesCommands.MarkUnpaid(context.Background(), recordID)
		assert.ErrorIs(t, err, commands.ErrDuesRecordNotFound)
	})
}
