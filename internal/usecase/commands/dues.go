package commands

import (
	"context"
	"time"

	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/clock"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuesRecordNotFound      = errs.New("dues record not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// DuesRepository is the write-side port over the ledger store. SetPaid and
// SetUnpaid are single-statement conditional updates; concurrent calls on the
// same record serialize at the row level, last write wins.
type DuesRepository interface {
	FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]*DuesRecordSnapshot, error)
	// SetPaid is idempotent: an already-paid record keeps its original
	// payment date and still reports success.
	SetPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*DuesRecordSnapshot, error)
	SetUnpaid(ctx context.Context, id uuid.UUID) (*DuesRecordSnapshot, error)
}

type DuesCommands interface {
	MarkPaid(ctx context.Context, dueID uuid.UUID) (*queries.DuesRecordView, error)
	MarkUnpaid(ctx context.Context, dueID uuid.UUID) (*queries.DuesRecordView, error)
}

type duesCommandsImpl struct {
	duesRepo DuesRepository
	clock    clock.Clock
}

func NewDuesCommands(duesRepo DuesRepository, clock clock.Clock) DuesCommands {
	return &duesCommandsImpl{
		duesRepo: duesRepo,
		clock:    clock,
	}
}

func (d *duesCommandsImpl) MarkPaid(ctx context.Context, dueID uuid.UUID) (*queries.DuesRecordView, error) {
	snapshot, err := d.duesRepo.SetPaid(ctx, dueID, d.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDuesRecordNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toDuesRecordView(snapshot), nil
}

func (d *duesCommandsImpl) MarkUnpaid(ctx context.Context, dueID uuid.UUID) (*queries.DuesRecordView, error) {
	snapshot, err := d.duesRepo.SetUnpaid(ctx, dueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDuesRecordNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toDuesRecordView(snapshot), nil
}

func toDuesRecordView(s *DuesRecordSnapshot) *queries.DuesRecordView {
	return &queries.DuesRecordView{
		ID:          s.ID,
		MemberID:    s.MemberID,
		Month:       s.Month,
		Year:        s.Year,
		Amount:      s.Amount,
		IsPaid:      s.IsPaid,
		PaymentDate: s.PaymentDate,
		IBAN:        s.IBAN,
	}
}
