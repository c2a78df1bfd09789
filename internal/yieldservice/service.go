// Package yieldservice manages business logic layer of yield accrual.
package yieldservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
)

// ErrNothingToAccrue indicates that the rounded yield for the period is zero.
var ErrNothingToAccrue = errors.New("nothing to accrue")

// periodLayout keys one accrual per account per calendar month.
const periodLayout = "2006-01"

// Ledger provides the ledger operations accrual appends through.
//
//go:generate mockgen -source service.go -destination service_mock.go -package yieldservice
type Ledger interface {
	CreditYield(ctx context.Context, accountID int32, amount, description, correlationID string) (domain.LedgerTxResult, error)
}

// AccountRepo provides read access to accounts eligible for accrual.
type AccountRepo interface {
	Get(ctx context.Context, id int32) (domain.Account, error)
	ListFunded(ctx context.Context) ([]domain.Account, error)
}

// Service facilitates yield accrual service layer logic.
type Service struct {
	ledger   Ledger
	accounts AccountRepo
	rate     decimal.Decimal
}

// New returns yield service struct for the given fixed monthly rate.
func New(lg Ledger, ar AccountRepo, monthlyRate string) (*Service, error) {
	rate, err := decimal.NewFromString(monthlyRate)
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	return &Service{
		ledger:   lg,
		accounts: ar,
		rate:     rate,
	}, nil
}

// Accrue computes one period of yield on the principal, rounded half-even
// to the smallest currency unit.
func Accrue(principal, rate decimal.Decimal) decimal.Decimal {
	return moneypkg.RoundCentavos(principal.Mul(rate))
}

// AccrueAccount applies one accrual period to the account.
//
// The movement carries a correlation id derived from the account and the
// period, so running the scheduler twice in the same month credits nothing
// the second time.
func (s *Service) AccrueAccount(ctx context.Context, accountID int32, period time.Time) (domain.LedgerTxResult, error) {
	acct, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return domain.LedgerTxResult{}, err
	}

	principal, err := moneypkg.Parse(acct.Principal)
	if err != nil {
		return domain.LedgerTxResult{}, err
	}

	amount := Accrue(principal, s.rate)
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.LedgerTxResult{}, ErrNothingToAccrue
	}

	month := period.Format(periodLayout)

	return s.ledger.CreditYield(ctx,
		accountID,
		moneypkg.Format(amount),
		fmt.Sprintf("Monthly yield %s", month),
		fmt.Sprintf("accrual:%d:%s", accountID, month),
	)
}

// AccrueAll applies one accrual period to every funded account and returns
// how many were credited and how many were already accrued for the period.
func (s *Service) AccrueAll(ctx context.Context, period time.Time) (credited, skipped int, err error) {
	l := zerolog.Ctx(ctx)

	accounts, err := s.accounts.ListFunded(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, acct := range accounts {
		_, err := s.AccrueAccount(ctx, acct.ID, period)

		switch err {
		case nil:
			credited++
		case domain.ErrDuplicateCorrelation, ErrNothingToAccrue:
			skipped++
		default:
			l.Error().Err(err).Int32("account_id", acct.ID).Msg("accrual failed")
			return credited, skipped, err
		}
	}

	return credited, skipped, nil
}
