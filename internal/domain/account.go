// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the owner already has a ledger account.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrOwnerNotFound indicates that the owner for the account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrAccountOwnerMismatch indicates that the account does not belong to the requesting user.
	ErrAccountOwnerMismatch = errors.New("account does not belong to the authenticated user")
)

// Account holds the cached ledger totals for one investor.
//
// Principal and AccruedYield are maintained inside the same database
// transaction as every movement append. Replaying the account's movements
// must always reproduce them.
type Account struct {
	ID                       int32      `json:"id"`
	Owner                    string     `json:"owner"`
	Principal                string     `json:"principal"`
	AccruedYield             string     `json:"accrued_yield"`
	FirstQualifyingDepositAt *time.Time `json:"first_qualifying_deposit_at,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
}

// Balance is the projection of an account's movements.
type Balance struct {
	Principal    string `json:"principal"`
	AccruedYield string `json:"accrued_yield"`
	Total        string `json:"total"`
}

// WithdrawalState describes what the account owner may withdraw right now.
type WithdrawalState string

// Withdrawal states are derived from the first qualifying deposit timestamp
// and the current date. They are never stored.
const (
	WithdrawalStateLocked        WithdrawalState = "LOCKED"
	WithdrawalStateYieldOnly     WithdrawalState = "YIELD_ONLY"
	WithdrawalStateFullyEligible WithdrawalState = "FULLY_ELIGIBLE"
)
