// Package movementrepo manages repository layer of ledger movements.
//
// Movements are append-only: there is no update or delete here, and the
// database grants the application role no such privileges either.
package movementrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/dbpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
)

// RepoPGS facilitates movement repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns movement RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const movementColumns = `id, account_id, type, amount, description, correlation_id, created_at`

func scanMovement(row *sql.Row) (domain.Movement, error) {
	var (
		m           domain.Movement
		correlation sql.NullString
	)

	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&correlation,
		&m.CreatedAt,
	)

	m.CorrelationID = correlation.String

	return m, err
}

const createQuery = `
INSERT INTO
    movements (account_id, type, amount, description, correlation_id)
VALUES
    ($1, $2, $3, $4, NULLIF($5, ''))
RETURNING ` + movementColumns

// Create appends the movement and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.AppendMovementParams) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AccountID,
		arg.Type,
		arg.Amount,
		arg.Description,
		arg.CorrelationID,
	)

	m, err := scanMovement(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "movements_account_id_fkey":
				return m, domain.ErrAccountNotFound
			case "movements_amount_check":
				return m, domain.ErrInvalidAmount
			case "movements_type_check":
				return m, domain.ErrUnknownMovementType
			case "movements_account_id_correlation_id_key":
				return m, domain.ErrDuplicateCorrelation
			}
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const getQuery = `
SELECT ` + movementColumns + `
FROM movements
WHERE id = $1
`

// Get returns the movement with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	m, err := scanMovement(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return m, domain.ErrMovementNotFound
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const getByCorrelationQuery = `
SELECT ` + movementColumns + `
FROM movements
WHERE account_id = $1 AND correlation_id = $2
`

// GetByCorrelation returns the movement recorded for the given idempotency key.
func (r *RepoPGS) GetByCorrelation(ctx context.Context, accountID int32, correlationID string) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	m, err := scanMovement(r.db.QueryRowContext(ctx, getByCorrelationQuery, accountID, correlationID))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return m, domain.ErrMovementNotFound
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const listQuery = `
SELECT ` + movementColumns + `
FROM movements
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

// List returns the specified page of the account's movements, newest first.
func (r *RepoPGS) List(ctx context.Context, accountID, limit, offset int32) ([]domain.Movement, error) {
	return r.list(ctx, listQuery, accountID, limit, offset)
}

const listAllQuery = `
SELECT ` + movementColumns + `
FROM movements
WHERE account_id = $1
ORDER BY created_at ASC, id ASC
`

// ListAll returns every movement of the account in append order, the order
// the balance projector replays them in.
func (r *RepoPGS) ListAll(ctx context.Context, accountID int32) ([]domain.Movement, error) {
	return r.list(ctx, listAllQuery, accountID)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Movement{}

	for rows.Next() {
		var (
			m           domain.Movement
			correlation sql.NullString
		)

		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.Type,
			&m.Amount,
			&m.Description,
			&correlation,
			&m.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		m.CorrelationID = correlation.String

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
