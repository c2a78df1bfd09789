// Package ledgerservice manages business logic layer of the movement ledger.
package ledgerservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
)

// Repo provides the transactional ledger interface needed by the service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Append(ctx context.Context, arg domain.AppendMovementParams) (domain.LedgerTxResult, error)
	WithdrawYield(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error)
	WithdrawTotal(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error)
}

// MovementRepo provides read access to recorded movements.
type MovementRepo interface {
	List(ctx context.Context, accountID, limit, offset int32) ([]domain.Movement, error)
	ListAll(ctx context.Context, accountID int32) ([]domain.Movement, error)
	GetByCorrelation(ctx context.Context, accountID int32, correlationID string) (domain.Movement, error)
}

// AccountRepo provides read access to cached account totals.
type AccountRepo interface {
	Get(ctx context.Context, id int32) (domain.Account, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo      Repo
	movements MovementRepo
	accounts  AccountRepo
}

// New returns ledger service struct to manage ledger bussines logic.
func New(lr Repo, mr MovementRepo, ar AccountRepo) *Service {
	return &Service{
		repo:      lr,
		movements: mr,
		accounts:  ar,
	}
}

// Deposit credits the principal with a confirmed deposit.
func (s *Service) Deposit(ctx context.Context, accountID int32, amount, description, correlationID string) (domain.LedgerTxResult, error) {
	if _, err := moneypkg.ParsePositive(amount); err != nil {
		return domain.LedgerTxResult{}, err
	}

	return s.repo.Append(ctx, domain.AppendMovementParams{
		AccountID:     accountID,
		Type:          domain.MovementDeposit,
		Amount:        amount,
		Description:   description,
		CorrelationID: correlationID,
	})
}

// CreditYield credits the accrued yield with one accrual period.
func (s *Service) CreditYield(ctx context.Context, accountID int32, amount, description, correlationID string) (domain.LedgerTxResult, error) {
	if _, err := moneypkg.ParsePositive(amount); err != nil {
		return domain.LedgerTxResult{}, err
	}

	return s.repo.Append(ctx, domain.AppendMovementParams{
		AccountID:     accountID,
		Type:          domain.MovementYieldCredit,
		Amount:        amount,
		Description:   description,
		CorrelationID: correlationID,
	})
}

// WithdrawYield withdraws the full accrued yield.
func (s *Service) WithdrawYield(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error) {
	return s.repo.WithdrawYield(ctx, accountID, description)
}

// WithdrawTotal zeroes the account, withdrawing principal plus yield.
func (s *Service) WithdrawTotal(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error) {
	return s.repo.WithdrawTotal(ctx, accountID, description)
}

// CurrentBalance returns the cached totals of the account.
func (s *Service) CurrentBalance(ctx context.Context, accountID int32) (domain.Balance, error) {
	acct, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	return BalanceOf(acct)
}

// ListMovements returns one page of the account history, newest first.
func (s *Service) ListMovements(ctx context.Context, accountID, pageSize, pageID int32) ([]domain.Movement, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.movements.List(ctx, accountID, limit, offset)
}

// MovementByCorrelation returns the movement recorded under the idempotency key.
func (s *Service) MovementByCorrelation(ctx context.Context, accountID int32, correlationID string) (domain.Movement, error) {
	return s.movements.GetByCorrelation(ctx, accountID, correlationID)
}

// VerifyReplay replays the full movement history and compares it against
// the cached totals. A difference means the ledger invariant is broken.
func (s *Service) VerifyReplay(ctx context.Context, accountID int32) error {
	l := zerolog.Ctx(ctx)

	acct, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return err
	}

	movements, err := s.movements.ListAll(ctx, accountID)
	if err != nil {
		return err
	}

	replayed, err := Replay(movements)
	if err != nil {
		return err
	}

	cached, err := BalanceOf(acct)
	if err != nil {
		return err
	}

	if replayed != cached {
		l.Error().
			Int32("account_id", accountID).
			Interface("cached", cached).
			Interface("replayed", replayed).
			Msg("cached balance diverged from movement replay")

		return domain.ErrBalanceDiverged
	}

	return nil
}
