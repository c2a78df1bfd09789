package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrChargeNotFound indicates that the PIX charge is not found.
	ErrChargeNotFound = errors.New("pix charge not found")
	// ErrChargeExpired indicates that the PIX charge expired before confirmation.
	ErrChargeExpired = errors.New("pix charge expired")
	// ErrAmountNotAllowed indicates that the amount is not one of the
	// platform's enumerated deposit amounts.
	ErrAmountNotAllowed = errors.New("deposit amount not allowed")
)

// ChargeStatus enumerates the PIX charge lifecycle.
type ChargeStatus string

// A charge transitions PENDING to CONFIRMED at most once; stale pending
// charges transition to EXPIRED and can never be confirmed.
const (
	ChargeStatusPending   ChargeStatus = "PENDING"
	ChargeStatusConfirmed ChargeStatus = "CONFIRMED"
	ChargeStatusExpired   ChargeStatus = "EXPIRED"
)

// PixCharge holds one payment request issued to the gateway.
type PixCharge struct {
	ID          uuid.UUID    `json:"id"`
	AccountID   int32        `json:"account_id"`
	Amount      string       `json:"amount"`
	Status      ChargeStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ConfirmedAt *time.Time   `json:"confirmed_at,omitempty"`
}

// CreatePixChargeParams is the input data to issue a charge.
type CreatePixChargeParams struct {
	ID        uuid.UUID `json:"id"`
	AccountID int32     `json:"account_id"`
	Amount    string    `json:"amount"`
}

// ChargeTicket is what the UI needs to render the payment step.
type ChargeTicket struct {
	ChargeID  uuid.UUID `json:"charge_id"`
	Amount    string    `json:"amount"`
	QRPayload string    `json:"qr_payload"`
	PixString string    `json:"pix_string"`
}

// ConfirmChargeResult is the outcome of a charge confirmation. Confirming
// the same charge twice returns the movement appended the first time.
type ConfirmChargeResult struct {
	Movement   Movement `json:"movement"`
	NewBalance Balance  `json:"new_balance"`
}
