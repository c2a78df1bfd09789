// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"
	"time"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/movementrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/userrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/dbpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/passpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/randompkg"
)

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.String(10),
		Email:          randompkg.Email(),
	}

	userRepo := userrepo.NewRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAccount creates an empty account for the given owner inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, owner string) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), owner)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v) returned error: %v", owner, err)
	}

	return account
}

// SeedMovement appends one movement row inside a test transaction.
//
// It writes the ledger row only; balances and the deposit anchor are left to
// the caller so tests can build divergent states on purpose.
func SeedMovement(t *testing.T, tx dbpkg.SQLInterface, arg domain.AppendMovementParams) domain.Movement {
	t.Helper()

	movementRepo := movementrepo.NewRepoPGS(tx)

	movement, err := movementRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("movementRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return movement
}

// SeedDeposit credits the account with one deposit inside a test transaction,
// keeping the movement, the balances and the first deposit anchor consistent.
func SeedDeposit(t *testing.T, tx dbpkg.SQLInterface, account domain.Account, amount string) (domain.Movement, domain.Account) {
	t.Helper()

	ctx := context.Background()

	movement := SeedMovement(t, tx, domain.AppendMovementParams{
		AccountID:   account.ID,
		Type:        domain.MovementDeposit,
		Amount:      amount,
		Description: "PIX deposit",
	})

	principal, err := moneypkg.Parse(account.Principal)
	if err != nil {
		t.Fatalf("moneypkg.Parse(%v) returned error: %v", account.Principal, err)
	}

	deposited, err := moneypkg.Parse(amount)
	if err != nil {
		t.Fatalf("moneypkg.Parse(%v) returned error: %v", amount, err)
	}

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err = accountRepo.SetBalances(ctx, account.ID,
		moneypkg.Format(principal.Add(deposited)), account.AccruedYield)
	if err != nil {
		t.Fatalf("accountRepo.SetBalances returned error: %v", err)
	}

	if account.FirstQualifyingDepositAt == nil {
		account, err = accountRepo.AnchorFirstDeposit(ctx, account.ID, movement.CreatedAt)
		if err != nil {
			t.Fatalf("accountRepo.AnchorFirstDeposit returned error: %v", err)
		}
	}

	return movement, account
}

// SeedFundedAccount creates a user-owned account holding one deposit, with
// the first qualifying deposit anchored the given number of days in the past.
func SeedFundedAccount(t *testing.T, tx dbpkg.SQLInterface, owner, amount string, anchoredDaysAgo int) domain.Account {
	t.Helper()

	account := SeedAccount(t, tx, owner)
	_, account = SeedDeposit(t, tx, account, amount)

	if anchoredDaysAgo > 0 {
		anchor := time.Now().AddDate(0, 0, -anchoredDaysAgo)

		accountRepo := accountrepo.NewRepoPGS(tx)

		var err error

		account, err = accountRepo.AnchorFirstDeposit(context.Background(), account.ID, anchor)
		if err != nil {
			t.Fatalf("accountRepo.AnchorFirstDeposit returned error: %v", err)
		}
	}

	return account
}
