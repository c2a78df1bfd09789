// Package depositservice manages business logic layer of PIX deposits.
package depositservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/ledgerservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/pixpkg"
)

const depositDescription = "PIX deposit"

// ChargeRepo provides data access layer interface needed by deposit service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package depositservice
type ChargeRepo interface {
	Create(ctx context.Context, arg domain.CreatePixChargeParams) (domain.PixCharge, error)
	Get(ctx context.Context, id uuid.UUID) (domain.PixCharge, error)
	Confirm(ctx context.Context, id uuid.UUID, at time.Time) (domain.PixCharge, error)
}

// Ledger provides the ledger operations the deposit workflow appends through.
type Ledger interface {
	Deposit(ctx context.Context, accountID int32, amount, description, correlationID string) (domain.LedgerTxResult, error)
	MovementByCorrelation(ctx context.Context, accountID int32, correlationID string) (domain.Movement, error)
	CurrentBalance(ctx context.Context, accountID int32) (domain.Balance, error)
}

// AccountGetter resolves the authenticated user's ledger account.
type AccountGetter interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// Service facilitates deposit service layer logic.
type Service struct {
	charges  ChargeRepo
	ledger   Ledger
	accounts AccountGetter
	merchant pixpkg.Merchant
	allowed  map[string]struct{}
	now      func() time.Time
}

// New returns deposit service struct to manage the PIX deposit workflow.
func New(cr ChargeRepo, lg Ledger, ag AccountGetter, merchant pixpkg.Merchant, allowedAmounts []string) *Service {
	allowed := make(map[string]struct{}, len(allowedAmounts))
	for _, a := range allowedAmounts {
		allowed[a] = struct{}{}
	}

	return &Service{
		charges:  cr,
		ledger:   lg,
		accounts: ag,
		merchant: merchant,
		allowed:  allowed,
		now:      time.Now,
	}
}

// AmountAllowed reports whether the amount belongs to the platform's
// enumerated deposit amounts.
func (s *Service) AmountAllowed(amount string) bool {
	_, ok := s.allowed[amount]
	return ok
}

// GenerateCharge issues a pending PIX charge for one of the enumerated
// amounts and renders its payment payload.
func (s *Service) GenerateCharge(ctx context.Context, owner, amount string) (domain.ChargeTicket, error) {
	l := zerolog.Ctx(ctx)

	if !s.AmountAllowed(amount) {
		l.Info().Str("amount", amount).Msg("rejected deposit amount outside the allowed set")
		return domain.ChargeTicket{}, domain.ErrAmountNotAllowed
	}

	acct, err := s.accounts.GetByOwner(ctx, owner)
	if err != nil {
		return domain.ChargeTicket{}, err
	}

	charge, err := s.charges.Create(ctx, domain.CreatePixChargeParams{
		ID:        uuid.New(),
		AccountID: acct.ID,
		Amount:    amount,
	})
	if err != nil {
		return domain.ChargeTicket{}, err
	}

	payload := pixpkg.Payload(s.merchant, chargeTxID(charge.ID), charge.Amount)

	return domain.ChargeTicket{
		ChargeID:  charge.ID,
		Amount:    charge.Amount,
		QRPayload: payload,
		PixString: payload,
	}, nil
}

// ConfirmCharge converts a confirmed charge into a deposit movement exactly once.
//
// Confirming the same charge again returns the movement appended the first
// time together with the current balance, never a second credit.
func (s *Service) ConfirmCharge(ctx context.Context, chargeID uuid.UUID) (domain.ConfirmChargeResult, error) {
	l := zerolog.Ctx(ctx)

	charge, err := s.charges.Confirm(ctx, chargeID, s.now())
	if err != nil {
		if err != domain.ErrChargeNotFound {
			return domain.ConfirmChargeResult{}, err
		}

		// The conditional update matched nothing: the charge is unknown,
		// expired, or was already confirmed (a gateway retry).
		charge, err = s.charges.Get(ctx, chargeID)
		if err != nil {
			return domain.ConfirmChargeResult{}, err
		}

		switch charge.Status {
		case domain.ChargeStatusConfirmed:
			return s.replayConfirmation(ctx, charge)
		case domain.ChargeStatusExpired:
			return domain.ConfirmChargeResult{}, domain.ErrChargeExpired
		default:
			l.Error().Str("charge_id", chargeID.String()).Msg("pending charge failed conditional confirmation")
			return domain.ConfirmChargeResult{}, errorspkg.ErrInternal
		}
	}

	res, err := s.appendDeposit(ctx, charge)
	if err == domain.ErrDuplicateCorrelation {
		// Lost a confirmation race after the status flip: the movement
		// exists, so surface the original one.
		return s.replayConfirmation(ctx, charge)
	}

	return res, err
}

func (s *Service) appendDeposit(ctx context.Context, charge domain.PixCharge) (domain.ConfirmChargeResult, error) {
	result, err := s.ledger.Deposit(ctx, charge.AccountID, charge.Amount, depositDescription, charge.ID.String())
	if err != nil {
		return domain.ConfirmChargeResult{}, err
	}

	balance, err := ledgerservice.BalanceOf(result.Account)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return domain.ConfirmChargeResult{}, errorspkg.ErrInternal
	}

	return domain.ConfirmChargeResult{
		Movement:   result.Movement,
		NewBalance: balance,
	}, nil
}

func (s *Service) replayConfirmation(ctx context.Context, charge domain.PixCharge) (domain.ConfirmChargeResult, error) {
	movement, err := s.ledger.MovementByCorrelation(ctx, charge.AccountID, charge.ID.String())
	if err == domain.ErrMovementNotFound {
		// The status flipped on an earlier attempt but the append never
		// landed. Credit the deposit now instead of stranding the charge.
		zerolog.Ctx(ctx).Warn().
			Str("charge_id", charge.ID.String()).
			Msg("confirmed charge has no deposit movement, appending it now")

		res, appendErr := s.appendDeposit(ctx, charge)
		if appendErr != domain.ErrDuplicateCorrelation {
			return res, appendErr
		}

		// A concurrent retry finished the recovery first.
		movement, err = s.ledger.MovementByCorrelation(ctx, charge.AccountID, charge.ID.String())
	}
	if err != nil {
		return domain.ConfirmChargeResult{}, err
	}

	balance, err := s.ledger.CurrentBalance(ctx, charge.AccountID)
	if err != nil {
		return domain.ConfirmChargeResult{}, err
	}

	return domain.ConfirmChargeResult{
		Movement:   movement,
		NewBalance: balance,
	}, nil
}

// chargeTxID derives the EMV transaction id from the charge uuid.
func chargeTxID(id uuid.UUID) string {
	return pixpkg.TxID(id.String())
}
