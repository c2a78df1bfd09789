// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/dbpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const accountColumns = `id, owner, principal, accrued_yield, first_qualifying_deposit_at, created_at`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a        domain.Account
		anchored sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.Principal,
		&a.AccruedYield,
		&anchored,
		&a.CreatedAt,
	)

	if anchored.Valid {
		t := anchored.Time
		a.FirstQualifyingDepositAt = &t
	}

	return a, err
}

const createQuery = `
INSERT INTO
    accounts (owner, principal, accrued_yield)
VALUES
    ($1, $2, $3)
RETURNING ` + accountColumns

// Create creates a zeroed ledger account for the owner and then returns it.
func (r *RepoPGS) Create(ctx context.Context, owner string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, owner, "0", "0")

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_owner_fkey":
				return a, domain.ErrOwnerNotFound
			case "accounts_owner_key":
				return a, domain.ErrAccountAlreadyExists
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByOwnerQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE owner = $1
`

// GetByOwner returns the ledger account of the given user.
func (r *RepoPGS) GetByOwner(ctx context.Context, owner string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getByOwnerQuery, owner))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getForUpdateQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1
FOR UPDATE
`

// GetForUpdate locks the account row for the rest of the enclosing
// transaction and returns it. Ledger mutations for one account are
// serialized through this lock.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getForUpdateQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const setBalancesQuery = `
UPDATE accounts
SET principal = $2, accrued_yield = $3
WHERE id = $1
RETURNING ` + accountColumns

// SetBalances overwrites the cached totals of the account.
func (r *RepoPGS) SetBalances(ctx context.Context, id int32, principal, accruedYield string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, setBalancesQuery, id, principal, accruedYield))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_accrued_yield_check":
				return a, domain.ErrInsufficientYield
			case "accounts_principal_check":
				return a, domain.ErrInvalidAmount
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const anchorQuery = `
UPDATE accounts
SET first_qualifying_deposit_at = $2
WHERE id = $1
RETURNING ` + accountColumns

// AnchorFirstDeposit sets the timestamp that starts the full-withdrawal
// lock window.
func (r *RepoPGS) AnchorFirstDeposit(ctx context.Context, id int32, at time.Time) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, anchorQuery, id, at))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listFundedQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE principal > 0
ORDER BY id
`

// ListFunded returns every account holding principal. The accrual run
// iterates over them.
func (r *RepoPGS) ListFunded(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listFundedQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var (
			a        domain.Account
			anchored sql.NullTime
		)

		if err := rows.Scan(&a.ID, &a.Owner, &a.Principal, &a.AccruedYield, &anchored, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if anchored.Valid {
			t := anchored.Time
			a.FirstQualifyingDepositAt = &t
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
