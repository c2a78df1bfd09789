package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoYieldAvailable indicates that there is no accrued yield to withdraw.
	ErrNoYieldAvailable = errors.New("no yield available to withdraw")
	// ErrNothingToWithdraw indicates that the account holds no balance at all.
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
)

// LockPeriodError indicates that the minimum holding period since the first
// qualifying deposit has not elapsed yet.
type LockPeriodError struct {
	RetryAfterDays int
}

func (e *LockPeriodError) Error() string {
	return fmt.Sprintf("lock period active, principal unlocks in %d days", e.RetryAfterDays)
}

// WithdrawalWindowError indicates that the lock period has elapsed but the
// request falls outside the monthly withdrawal window.
type WithdrawalWindowError struct {
	NextWindowDate time.Time
}

func (e *WithdrawalWindowError) Error() string {
	return fmt.Sprintf("outside withdrawal window, next window opens %s", e.NextWindowDate.Format("2006-01-02"))
}
