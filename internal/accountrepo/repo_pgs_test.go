//go:build integration

package accountrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/integrationtest"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/test"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/configpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func requireAmountEqual(t *testing.T, want, got string) {
	t.Helper()

	wantDec, err := decimal.NewFromString(want)
	require.NoError(t, err)
	gotDec, err := decimal.NewFromString(got)
	require.NoError(t, err)

	require.True(t, wantDec.Equal(gotDec), "amount: got %v, want %v", got, want)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	user := test.SeedUser(t, tx)

	account, err := accountRepo.Create(context.Background(), user.Username)
	require.NoError(t, err)

	require.NotZero(t, account.ID)
	require.Equal(t, user.Username, account.Owner)
	requireAmountEqual(t, moneypkg.Zero, account.Principal)
	requireAmountEqual(t, moneypkg.Zero, account.AccruedYield)
	require.Nil(t, account.FirstQualifyingDepositAt)
	require.NotZero(t, account.CreatedAt)
}

func TestCreateConstraintViolations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		owner   func(tx *sql.Tx) string
		wantErr error
	}{
		{
			name: "ErrOwnerNotFound",
			owner: func(tx *sql.Tx) string {
				return randompkg.Owner()
			},
			wantErr: domain.ErrOwnerNotFound,
		},
		{
			name: "ErrAccountAlreadyExists",
			owner: func(tx *sql.Tx) string {
				user := test.SeedUser(t, tx)
				test.SeedAccount(t, tx, user.Username)

				return user.Username
			},
			wantErr: domain.ErrAccountAlreadyExists,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			accountRepo := accountrepo.NewRepoPGS(tx)

			owner := tc.owner(tx)

			_, err := accountRepo.Create(context.Background(), owner)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	want := test.SeedAccount(t, tx, user.Username)

	got, err := accountRepo.Get(context.Background(), want.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("accountRepo.Get(context.Background(), %v) returned unexpected difference (-want +got):\n%s",
			want.ID, diff)
	}

	_, err = accountRepo.Get(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetByOwner(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	want := test.SeedAccount(t, tx, user.Username)

	got, err := accountRepo.GetByOwner(context.Background(), user.Username)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("accountRepo.GetByOwner(context.Background(), %v) returned unexpected difference (-want +got):\n%s",
			user.Username, diff)
	}

	_, err = accountRepo.GetByOwner(context.Background(), randompkg.Owner())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSetBalances(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		principal    string
		accruedYield string
		wantErr      error
	}{
		{
			name:         "OK",
			principal:    "1000.00",
			accruedYield: "8.35",
		},
		{
			name:         "ErrInvalidAmount",
			principal:    "-0.01",
			accruedYield: moneypkg.Zero,
			wantErr:      domain.ErrInvalidAmount,
		},
		{
			name:         "ErrInsufficientYield",
			principal:    "1000.00",
			accruedYield: "-0.01",
			wantErr:      domain.ErrInsufficientYield,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			accountRepo := accountrepo.NewRepoPGS(tx)

			user := test.SeedUser(t, tx)
			account := test.SeedAccount(t, tx, user.Username)

			got, err := accountRepo.SetBalances(context.Background(), account.ID, tc.principal, tc.accruedYield)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			requireAmountEqual(t, tc.principal, got.Principal)
			requireAmountEqual(t, tc.accruedYield, got.AccruedYield)
		})
	}
}

func TestAnchorFirstDeposit(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	account := test.SeedAccount(t, tx, user.Username)

	anchor := time.Now().AddDate(0, 0, -95).Truncate(time.Second).UTC()

	got, err := accountRepo.AnchorFirstDeposit(context.Background(), account.ID, anchor)
	require.NoError(t, err)
	require.NotNil(t, got.FirstQualifyingDepositAt)
	require.WithinDuration(t, anchor, *got.FirstQualifyingDepositAt, time.Second)

	// Anchoring again overwrites the previous timestamp. The ledger relies on
	// this when the first deposit after a total withdrawal restarts the lock.
	anchor = time.Now().Truncate(time.Second).UTC()

	got, err = accountRepo.AnchorFirstDeposit(context.Background(), account.ID, anchor)
	require.NoError(t, err)
	require.WithinDuration(t, anchor, *got.FirstQualifyingDepositAt, time.Second)

	_, err = accountRepo.AnchorFirstDeposit(context.Background(), 0, anchor)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListFunded(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	funded1 := test.SeedFundedAccount(t, tx, test.SeedUser(t, tx).Username, "1000.00", 0)
	funded2 := test.SeedFundedAccount(t, tx, test.SeedUser(t, tx).Username, "250.00", 0)
	empty := test.SeedAccount(t, tx, test.SeedUser(t, tx).Username)

	got, err := accountRepo.ListFunded(context.Background())
	require.NoError(t, err)

	ids := make(map[int32]bool, len(got))
	for _, a := range got {
		ids[a.ID] = true
	}

	require.True(t, ids[funded1.ID])
	require.True(t, ids[funded2.ID])
	require.False(t, ids[empty.ID])
}
