package ledgerservice

import (
	"github.com/shopspring/decimal"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
)

// Replay reconstructs the balance by applying movements in append order.
//
// This is the correctness reference for the cached totals: for any movement
// history the replayed balance must equal the totals maintained inside the
// ledger transactions.
func Replay(movements []domain.Movement) (domain.Balance, error) {
	principal, accrued := decimal.Zero, decimal.Zero

	for _, m := range movements {
		amount, err := moneypkg.ParsePositive(m.Amount)
		if err != nil {
			return domain.Balance{}, err
		}

		switch m.Type {
		case domain.MovementDeposit:
			principal = principal.Add(amount)
		case domain.MovementYieldCredit:
			accrued = accrued.Add(amount)
		case domain.MovementYieldWithdrawal:
			accrued = accrued.Sub(amount)
			if accrued.IsNegative() {
				return domain.Balance{}, domain.ErrInsufficientYield
			}
		case domain.MovementTotalWithdrawal:
			principal, accrued = decimal.Zero, decimal.Zero
		default:
			return domain.Balance{}, domain.ErrUnknownMovementType
		}
	}

	return domain.Balance{
		Principal:    moneypkg.Format(principal),
		AccruedYield: moneypkg.Format(accrued),
		Total:        moneypkg.Format(principal.Add(accrued)),
	}, nil
}

// BalanceOf builds the balance projection from the cached account totals.
func BalanceOf(acct domain.Account) (domain.Balance, error) {
	principal, err := moneypkg.Parse(acct.Principal)
	if err != nil {
		return domain.Balance{}, err
	}

	accrued, err := moneypkg.Parse(acct.AccruedYield)
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		Principal:    moneypkg.Format(principal),
		AccruedYield: moneypkg.Format(accrued),
		Total:        moneypkg.Format(principal.Add(accrued)),
	}, nil
}
