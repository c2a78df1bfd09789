package test

import (
	"time"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/randompkg"
)

// RandomAccount returns a random empty account owned by the given owner.
func RandomAccount(owner string) domain.Account {
	return domain.Account{
		ID:           randompkg.IntBetween(1, 100),
		Owner:        owner,
		Principal:    moneypkg.Zero,
		AccruedYield: moneypkg.Zero,
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomFundedAccount returns a random account with principal, accrued yield
// and a first qualifying deposit anchored the given number of days ago.
func RandomFundedAccount(owner string, anchoredDaysAgo int) domain.Account {
	anchor := time.Now().AddDate(0, 0, -anchoredDaysAgo).Truncate(time.Second).UTC()

	return domain.Account{
		ID:                       randompkg.IntBetween(1, 100),
		Owner:                    owner,
		Principal:                randompkg.DepositAmount(),
		AccruedYield:             randompkg.MoneyAmountBetween(1, 100),
		FirstQualifyingDepositAt: &anchor,
		CreatedAt:                anchor,
	}
}
