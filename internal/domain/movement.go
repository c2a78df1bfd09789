package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrMovementNotFound indicates that the movement is not found.
	ErrMovementNotFound = errors.New("movement not found")
	// ErrDuplicateCorrelation indicates that a movement with the same
	// correlation id was already appended for the account.
	ErrDuplicateCorrelation = errors.New("movement correlation id already recorded")
	// ErrInsufficientYield indicates that the withdrawal would drive
	// the accrued yield below zero.
	ErrInsufficientYield = errors.New("insufficient accrued yield")
	// ErrUnknownMovementType indicates a movement type the projector cannot apply.
	ErrUnknownMovementType = errors.New("unknown movement type")
	// ErrBalanceDiverged indicates that the cached totals no longer match
	// the movement replay.
	ErrBalanceDiverged = errors.New("cached balance diverged from ledger replay")
)

// MovementType enumerates the balance-affecting event kinds.
type MovementType string

// All movement types. The ledger accepts no other values.
const (
	MovementDeposit         MovementType = "DEPOSIT"
	MovementYieldCredit     MovementType = "YIELD_CREDIT"
	MovementYieldWithdrawal MovementType = "YIELD_WITHDRAWAL"
	MovementTotalWithdrawal MovementType = "TOTAL_WITHDRAWAL"
)

// Movement is one immutable ledger entry. Movements are only ever appended;
// an account's balance is reconstructible by replaying them in created_at order.
type Movement struct {
	ID            int64        `json:"id"`
	AccountID     int32        `json:"account_id"`
	Type          MovementType `json:"type"`
	Amount        string       `json:"amount"` // always positive
	Description   string       `json:"description"`
	CorrelationID string       `json:"correlation_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// AppendMovementParams is the input data to append a movement to the ledger.
type AppendMovementParams struct {
	AccountID     int32        `json:"account_id"`
	Type          MovementType `json:"type"`
	Amount        string       `json:"amount"`
	Description   string       `json:"description"`
	CorrelationID string       `json:"correlation_id"`
}

// LedgerTxResult is the outcome of one atomic ledger transaction: the
// appended movement and the account with its refreshed totals.
type LedgerTxResult struct {
	Movement Movement `json:"movement"`
	Account  Account  `json:"account"`
}
