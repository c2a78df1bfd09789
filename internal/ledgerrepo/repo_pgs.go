// Package ledgerrepo manages the transactional orchestration of the ledger.
//
// Every mutation locks the account row, appends exactly one movement and
// refreshes the cached totals within a single database transaction, so
// concurrent requests against the same account are serialized.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/movementrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: db,
	}
}

// Append applies one Deposit or YieldCredit movement atomically.
//
// For deposits into an empty account the first-qualifying-deposit timestamp
// is re-anchored to the movement creation time.
func (r *RepoPGS) Append(ctx context.Context, arg domain.AppendMovementParams) (domain.LedgerTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerTxResult

	amount, err := moneypkg.ParsePositive(arg.Amount)
	if err != nil {
		return result, err
	}

	return r.inTx(ctx, arg.AccountID, func(accounts *accountrepo.RepoPGS, movements *movementrepo.RepoPGS, acct domain.Account) (domain.LedgerTxResult, error) {
		principal, accrued, err := parseBalances(acct)
		if err != nil {
			l.Error().Err(err).Send()
			return result, errorspkg.ErrInternal
		}

		wasEmpty := principal.Add(accrued).IsZero()

		switch arg.Type {
		case domain.MovementDeposit:
			principal = principal.Add(amount)
		case domain.MovementYieldCredit:
			accrued = accrued.Add(amount)
		default:
			return result, domain.ErrUnknownMovementType
		}

		result.Movement, err = movements.Create(ctx, arg)
		if err != nil {
			return result, err
		}

		result.Account, err = accounts.SetBalances(ctx, acct.ID, moneypkg.Format(principal), moneypkg.Format(accrued))
		if err != nil {
			return result, err
		}

		if arg.Type == domain.MovementDeposit && wasEmpty {
			result.Account, err = accounts.AnchorFirstDeposit(ctx, acct.ID, result.Movement.CreatedAt)
			if err != nil {
				return result, err
			}
		}

		return result, nil
	})
}

// WithdrawYield withdraws the full accrued yield of the account atomically.
//
// The amount is read under the row lock, so two concurrent calls cannot both
// observe the same yield: the second sees zero and fails.
func (r *RepoPGS) WithdrawYield(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerTxResult

	return r.inTx(ctx, accountID, func(accounts *accountrepo.RepoPGS, movements *movementrepo.RepoPGS, acct domain.Account) (domain.LedgerTxResult, error) {
		_, accrued, err := parseBalances(acct)
		if err != nil {
			l.Error().Err(err).Send()
			return result, errorspkg.ErrInternal
		}

		if accrued.LessThanOrEqual(decimal.Zero) {
			return result, domain.ErrNoYieldAvailable
		}

		result.Movement, err = movements.Create(ctx, domain.AppendMovementParams{
			AccountID:   accountID,
			Type:        domain.MovementYieldWithdrawal,
			Amount:      moneypkg.Format(accrued),
			Description: description,
		})
		if err != nil {
			return result, err
		}

		result.Account, err = accounts.SetBalances(ctx, accountID, acct.Principal, moneypkg.Zero)

		return result, err
	})
}

// WithdrawTotal withdraws principal plus accrued yield and zeroes the
// account atomically. The first-qualifying-deposit timestamp stays as is;
// the next deposit re-anchors it.
func (r *RepoPGS) WithdrawTotal(ctx context.Context, accountID int32, description string) (domain.LedgerTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerTxResult

	return r.inTx(ctx, accountID, func(accounts *accountrepo.RepoPGS, movements *movementrepo.RepoPGS, acct domain.Account) (domain.LedgerTxResult, error) {
		principal, accrued, err := parseBalances(acct)
		if err != nil {
			l.Error().Err(err).Send()
			return result, errorspkg.ErrInternal
		}

		total := principal.Add(accrued)
		if total.LessThanOrEqual(decimal.Zero) {
			return result, domain.ErrNothingToWithdraw
		}

		result.Movement, err = movements.Create(ctx, domain.AppendMovementParams{
			AccountID:   accountID,
			Type:        domain.MovementTotalWithdrawal,
			Amount:      moneypkg.Format(total),
			Description: description,
		})
		if err != nil {
			return result, err
		}

		result.Account, err = accounts.SetBalances(ctx, accountID, moneypkg.Zero, moneypkg.Zero)

		return result, err
	})
}

type txFunc func(accounts *accountrepo.RepoPGS, movements *movementrepo.RepoPGS, acct domain.Account) (domain.LedgerTxResult, error)

// inTx runs fn with the account row locked for the whole transaction.
func (r *RepoPGS) inTx(ctx context.Context, accountID int32, fn txFunc) (domain.LedgerTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accounts := accountrepo.NewRepoPGS(tx)
	movements := movementrepo.NewRepoPGS(tx)

	acct, err := accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		return result, err
	}

	result, err = fn(accounts, movements, acct)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

func parseBalances(acct domain.Account) (principal, accrued decimal.Decimal, err error) {
	principal, err = moneypkg.Parse(acct.Principal)
	if err != nil {
		return principal, accrued, err
	}

	accrued, err = moneypkg.Parse(acct.AccruedYield)

	return principal, accrued, err
}
