// Package withdrawalservice manages business logic layer of withdrawals.
//
// Eligibility is derived from the first qualifying deposit timestamp and
// the request time on every call; no state transition is ever stored.
package withdrawalservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
)

const (
	yieldWithdrawalDescription = "Yield withdrawal"
	totalWithdrawalDescription = "Total withdrawal"

	hoursPerDay = 24
)

// Ledger provides the ledger operations withdrawals append through.
//
//go:generate mockgen -source service.go -destination service_mock.go -package withdrawalservice
type Ledger interface {
	WithdrawYield(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error)
	WithdrawTotal(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error)
}

// AccountGetter resolves the authenticated user's ledger account.
type AccountGetter interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// Policy holds the time-gate parameters of the full withdrawal.
type Policy struct {
	// LockPeriodDays is the minimum holding period since the first
	// qualifying deposit.
	LockPeriodDays int
	// WindowLastDay is the last day of month on which principal may leave.
	WindowLastDay int
}

// Service facilitates withdrawal service layer logic.
type Service struct {
	ledger   Ledger
	accounts AccountGetter
	policy   Policy
	now      func() time.Time
}

// New returns withdrawal service struct to manage withdrawal bussines logic.
func New(lg Ledger, ag AccountGetter, policy Policy) *Service {
	return &Service{
		ledger:   lg,
		accounts: ag,
		policy:   policy,
		now:      time.Now,
	}
}

// State derives what the account owner may withdraw at the given moment.
func (s *Service) State(acct domain.Account) domain.WithdrawalState {
	err := s.fullWithdrawalGate(acct, s.now())

	switch err.(type) {
	case nil:
		return domain.WithdrawalStateFullyEligible
	case *domain.WithdrawalWindowError:
		return domain.WithdrawalStateYieldOnly
	default:
		return domain.WithdrawalStateLocked
	}
}

// WithdrawYield withdraws the full accrued yield of the owner's account.
// Yield is never time-gated; the only requirement is that there is some.
func (s *Service) WithdrawYield(ctx context.Context, owner string) (domain.LedgerTxResult, error) {
	acct, err := s.accounts.GetByOwner(ctx, owner)
	if err != nil {
		return domain.LedgerTxResult{}, err
	}

	return s.ledger.WithdrawYield(ctx, acct.ID, yieldWithdrawalDescription)
}

// WithdrawTotal withdraws principal plus accrued yield once both time gates
// pass: the lock period has elapsed and the request falls inside the
// monthly withdrawal window.
func (s *Service) WithdrawTotal(ctx context.Context, owner string) (domain.LedgerTxResult, error) {
	l := zerolog.Ctx(ctx)

	acct, err := s.accounts.GetByOwner(ctx, owner)
	if err != nil {
		return domain.LedgerTxResult{}, err
	}

	if err := s.fullWithdrawalGate(acct, s.now()); err != nil {
		l.Info().Err(err).Int32("account_id", acct.ID).Msg("full withdrawal refused")
		return domain.LedgerTxResult{}, err
	}

	return s.ledger.WithdrawTotal(ctx, acct.ID, totalWithdrawalDescription)
}

// fullWithdrawalGate returns nil when principal may leave now. The lock
// period is reported before the window so the user always sees the gate
// that is furthest from opening.
func (s *Service) fullWithdrawalGate(acct domain.Account, now time.Time) error {
	if acct.FirstQualifyingDepositAt == nil {
		return &domain.LockPeriodError{RetryAfterDays: s.policy.LockPeriodDays}
	}

	elapsed := daysBetween(*acct.FirstQualifyingDepositAt, now)
	if elapsed < s.policy.LockPeriodDays {
		return &domain.LockPeriodError{RetryAfterDays: s.policy.LockPeriodDays - elapsed}
	}

	if now.Day() > s.policy.WindowLastDay {
		return &domain.WithdrawalWindowError{NextWindowDate: nextWindowOpen(now)}
	}

	return nil
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}

	return int(to.Sub(from).Hours() / hoursPerDay)
}

// nextWindowOpen returns the first day of the following month.
func nextWindowOpen(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
}
