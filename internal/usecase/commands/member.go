package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"membership-portal/internal/domain/dues"
	"membership-portal/internal/domain/member"
	reqdto "membership-portal/internal/handler/dto/request"
	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/clock"
	"membership-portal/internal/pkg/config"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/pkg/password"
	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUsernameTaken   = errs.New("username already registered")
	ErrInvalidMember   = errs.New("invalid member data")
	ErrMemberNotFound  = errs.New("member not found")
	ErrPasswordHashing = errs.New("password hashing failed")
)

type MemberWriteRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, m *member.Member) error
	SetApproved(ctx context.Context, id uuid.UUID) error
}

// DuesLedgerRepository seeds the academic-year ledger inside the
// member-creation transaction.
type DuesLedgerRepository interface {
	InsertLedger(ctx context.Context, tx pgx.Tx, records []*dues.Record) error
}

type MemberCommands interface {
	Create(ctx context.Context, req reqdto.CreateMemberRequest) (*queries.MemberView, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type memberCommandsImpl struct {
	memberRepo      MemberWriteRepository
	duesLedgerRepo  DuesLedgerRepository
	memberReadStore queries.MemberReadStore
	db              *pgxpool.Pool
	clock           clock.Clock
	ledgerCfg       config.LedgerConfig
}

func NewMemberCommands(
	memberRepo MemberWriteRepository,
	duesLedgerRepo DuesLedgerRepository,
	memberReadStore queries.MemberReadStore,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) MemberCommands {
	return &memberCommandsImpl{
		memberRepo:      memberRepo,
		duesLedgerRepo:  duesLedgerRepo,
		memberReadStore: memberReadStore,
		db:              db,
		clock:           clock,
		ledgerCfg:       cfg.Ledger,
	}
}

// Create inserts the member and their academic-year dues ledger in one
// transaction: a member either has their full ten-month ledger or does not
// exist. The ledger is generated exactly once; re-running creation for a
// taken username fails before any rows land.
func (m *memberCommandsImpl) Create(ctx context.Context, req reqdto.CreateMemberRequest) (*queries.MemberView, error) {
	username, err := member.NewUsername(req.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMember)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	memberEntity, err := member.NewMember(req.Name, req.Surname, username, hash, req.IsAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMember)
	}

	ledger, err := dues.NewAcademicYearLedger(
		memberEntity.ID(),
		academicStartYear(m.clock.Now()),
		m.ledgerCfg.DefaultAmount,
		m.ledgerCfg.IBAN,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMember)
	}

	if err := m.executeCreateTransaction(ctx, memberEntity, ledger); err != nil {
		return nil, err
	}

	// Read-after-write: return the stored view
	view, err := m.memberReadStore.FindByID(ctx, memberEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (m *memberCommandsImpl) executeCreateTransaction(ctx context.Context, memberEntity *member.Member, ledger []*dues.Record) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := m.memberRepo.Insert(ctx, tx, memberEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrUsernameTaken
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := m.duesLedgerRepo.InsertLedger(ctx, tx, ledger); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (m *memberCommandsImpl) Approve(ctx context.Context, id uuid.UUID) error {
	if err := m.memberRepo.SetApproved(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMemberNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// The academic year starts in September: before that, new members join the
// ledger year that began the previous calendar year.
func academicStartYear(now time.Time) int {
	if now.Month() >= time.September {
		return now.Year()
	}
	return now.Year() - 1
}
