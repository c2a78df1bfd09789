// Package simulationservice provides the pure month-by-month balance projector.
//
// Simulations never touch the ledger: the same input always produces the
// same output and concurrent calls need no synchronization.
package simulationservice

import (
	"github.com/shopspring/decimal"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/moneypkg"
)

// MaxMonths bounds the forecast horizon.
const MaxMonths = 360

// Service facilitates simulation logic for a fixed monthly rate.
type Service struct {
	rate decimal.Decimal
}

// New returns simulation service struct for the given fixed monthly rate.
func New(monthlyRate string) (*Service, error) {
	rate, err := decimal.NewFromString(monthlyRate)
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	return &Service{rate: rate}, nil
}

// Simulate projects the balance month by month.
//
// Each month the yield is computed on the running balance, rounded
// half-even to centavos, then the balance grows by the yield plus the
// optional extra deposit. The summary reconciles exactly:
// final balance = total invested + total yield.
func (s *Service) Simulate(input domain.SimulationInput) (domain.SimulationResult, error) {
	initial, err := moneypkg.Parse(input.InitialDeposit)
	if err != nil || initial.LessThanOrEqual(decimal.Zero) {
		return domain.SimulationResult{}, domain.ErrInvalidSimulationInput
	}

	if input.Months <= 0 {
		return domain.SimulationResult{}, domain.ErrInvalidSimulationInput
	}

	if input.Months > MaxMonths {
		return domain.SimulationResult{}, domain.ErrSimulationTooLong
	}

	extra := decimal.Zero

	if input.MonthlyExtraDeposit != "" {
		extra, err = moneypkg.Parse(input.MonthlyExtraDeposit)
		if err != nil || extra.IsNegative() {
			return domain.SimulationResult{}, domain.ErrInvalidSimulationInput
		}
	}

	var (
		history    = make([]domain.SimulationMonth, 0, input.Months)
		balance    = initial
		totalYield = decimal.Zero
	)

	for month := 1; month <= input.Months; month++ {
		yield := moneypkg.RoundCentavos(balance.Mul(s.rate))
		balance = balance.Add(yield).Add(extra)
		totalYield = totalYield.Add(yield)

		history = append(history, domain.SimulationMonth{
			Month:   month,
			Yield:   moneypkg.Format(yield),
			Balance: moneypkg.Format(balance),
		})
	}

	invested := initial.Add(extra.Mul(decimal.NewFromInt(int64(input.Months))))

	return domain.SimulationResult{
		History: history,
		Summary: domain.SimulationSummary{
			TotalInvested: moneypkg.Format(invested),
			TotalYield:    moneypkg.Format(totalYield),
			FinalBalance:  moneypkg.Format(balance),
		},
	}, nil
}
