// Package chargerepo manages repository layer of PIX charges.
package chargerepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/dbpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
)

// RepoPGS facilitates PIX charge repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns charge RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const chargeColumns = `id, account_id, amount, status, created_at, confirmed_at`

func scanCharge(row *sql.Row) (domain.PixCharge, error) {
	var (
		c         domain.PixCharge
		confirmed sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.AccountID,
		&c.Amount,
		&c.Status,
		&c.CreatedAt,
		&confirmed,
	)

	if confirmed.Valid {
		t := confirmed.Time
		c.ConfirmedAt = &t
	}

	return c, err
}

const createQuery = `
INSERT INTO
    pix_charges (id, account_id, amount, status)
VALUES
    ($1, $2, $3, $4)
RETURNING ` + chargeColumns

// Create creates a pending charge and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreatePixChargeParams) (domain.PixCharge, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.ID, arg.AccountID, arg.Amount, domain.ChargeStatusPending)

	c, err := scanCharge(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "pix_charges_account_id_fkey":
				return c, domain.ErrAccountNotFound
			case "pix_charges_amount_check":
				return c, domain.ErrInvalidAmount
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT ` + chargeColumns + `
FROM pix_charges
WHERE id = $1
`

// Get returns the charge with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.PixCharge, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCharge(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrChargeNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const confirmQuery = `
UPDATE pix_charges
SET status = $2, confirmed_at = $3
WHERE id = $1 AND status = $4
RETURNING ` + chargeColumns

// Confirm transitions a pending charge to confirmed at most once.
//
// When the charge is not pending anymore the conditional update matches
// nothing and ErrChargeNotFound is returned; the caller inspects the charge
// to distinguish replayed confirmations from expired or unknown charges.
func (r *RepoPGS) Confirm(ctx context.Context, id uuid.UUID, at time.Time) (domain.PixCharge, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, confirmQuery, id, domain.ChargeStatusConfirmed, at, domain.ChargeStatusPending)

	c, err := scanCharge(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.ErrChargeNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const expirePendingQuery = `
UPDATE pix_charges
SET status = $1
WHERE status = $2 AND created_at < $3
`

// ExpirePending expires every pending charge created before the cutoff and
// returns how many were expired.
func (r *RepoPGS) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, expirePendingQuery, domain.ChargeStatusExpired, domain.ChargeStatusPending, cutoff)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}
