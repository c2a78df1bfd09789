//go:build integration

package chargerepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/chargerepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/integrationtest"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/test"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/configpkg"
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

func SeedCharge(t *testing.T, tx *sql.Tx, accountID int32, amount string) domain.PixCharge {
	t.Helper()

	chargeRepo := chargerepo.NewRepoPGS(tx)

	arg := domain.CreatePixChargeParams{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    amount,
	}

	charge, err := chargeRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("chargeRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return charge
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	account := test.SeedAccount(t, tx, test.SeedUser(t, tx).Username)

	charge := SeedCharge(t, tx, account.ID, "1000.00")

	require.Equal(t, account.ID, charge.AccountID)
	require.Equal(t, domain.ChargeStatusPending, charge.Status)
	require.Nil(t, charge.ConfirmedAt)
	require.NotZero(t, charge.CreatedAt)
}

func TestCreateConstraintViolations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		arg     func(tx *sql.Tx) domain.CreatePixChargeParams
		wantErr error
	}{
		{
			name: "ErrAccountNotFound",
			arg: func(tx *sql.Tx) domain.CreatePixChargeParams {
				return domain.CreatePixChargeParams{
					ID:        uuid.New(),
					AccountID: 0,
					Amount:    "1000.00",
				}
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "ErrInvalidAmount",
			arg: func(tx *sql.Tx) domain.CreatePixChargeParams {
				account := test.SeedAccount(t, tx, test.SeedUser(t, tx).Username)
				return domain.CreatePixChargeParams{
					ID:        uuid.New(),
					AccountID: account.ID,
					Amount:    "-1000.00",
				}
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			chargeRepo := chargerepo.NewRepoPGS(tx)

			arg := tc.arg(tx)

			_, err := chargeRepo.Create(context.Background(), arg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	chargeRepo := chargerepo.NewRepoPGS(tx)

	account := test.SeedAccount(t, tx, test.SeedUser(t, tx).Username)
	want := SeedCharge(t, tx, account.ID, "500.00")

	got, err := chargeRepo.Get(context.Background(), want.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("chargeRepo.Get(context.Background(), %v) returned unexpected difference (-want +got):\n%s",
			want.ID, diff)
	}

	_, err = chargeRepo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrChargeNotFound)
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	chargeRepo := chargerepo.NewRepoPGS(tx)

	account := test.SeedAccount(t, tx, test.SeedUser(t, tx).Username)
	charge := SeedCharge(t, tx, account.ID, "1000.00")

	now := time.Now().Truncate(time.Second).UTC()

	got, err := chargeRepo.Confirm(context.Background(), charge.ID, now)
	require.NoError(t, err)
	require.Equal(t, domain.ChargeStatusConfirmed, got.Status)
	require.NotNil(t, got.ConfirmedAt)
	require.WithinDuration(t, now, *got.ConfirmedAt, time.Second)

	// The conditional update matches only pending charges, so confirming
	// twice fails and the first confirmation timestamp survives.
	_, err = chargeRepo.Confirm(context.Background(), charge.ID, now.Add(time.Hour))
	require.ErrorIs(t, err, domain.ErrChargeNotFound)

	got, err = chargeRepo.Get(context.Background(), charge.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ChargeStatusConfirmed, got.Status)
	require.WithinDuration(t, now, *got.ConfirmedAt, time.Second)

	_, err = chargeRepo.Confirm(context.Background(), uuid.New(), now)
	require.ErrorIs(t, err, domain.ErrChargeNotFound)
}

func TestExpirePending(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	chargeRepo := chargerepo.NewRepoPGS(tx)

	account := test.SeedAccount(t, tx, test.SeedUser(t, tx).Username)

	stale := SeedCharge(t, tx, account.ID, "1000.00")
	confirmed := SeedCharge(t, tx, account.ID, "500.00")

	_, err := chargeRepo.Confirm(context.Background(), confirmed.ID, time.Now())
	require.NoError(t, err)

	cutoff := time.Now().Add(time.Minute)

	n, err := chargeRepo.ExpirePending(context.Background(), cutoff)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := chargeRepo.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ChargeStatusExpired, got.Status)

	got, err = chargeRepo.Get(context.Background(), confirmed.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ChargeStatusConfirmed, got.Status)

	// Expired charges stay expired; a later confirmation attempt fails.
	_, err = chargeRepo.Confirm(context.Background(), stale.ID, time.Now())
	require.ErrorIs(t, err, domain.ErrChargeNotFound)
}
