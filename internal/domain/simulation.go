package domain

import "errors"

var (
	// ErrInvalidSimulationInput indicates non-positive deposit or period.
	ErrInvalidSimulationInput = errors.New("invalid simulation input")
	// ErrSimulationTooLong indicates a simulation period beyond the supported range.
	ErrSimulationTooLong = errors.New("simulation period too long")
)

// SimulationInput is the what-if projection request. It has no persistent
// identity and never touches the ledger.
type SimulationInput struct {
	InitialDeposit      string `json:"initial_deposit"`
	Months              int    `json:"months"`
	MonthlyExtraDeposit string `json:"monthly_extra_deposit"`
}

// SimulationMonth is one row of the projected forecast table.
type SimulationMonth struct {
	Month   int    `json:"month"`
	Yield   string `json:"rendimento"`
	Balance string `json:"saldoAcumulado"`
}

// SimulationSummary aggregates the projection.
type SimulationSummary struct {
	TotalInvested string `json:"totalInvestido"`
	TotalYield    string `json:"totalRendimentos"`
	FinalBalance  string `json:"valorFinal"`
}

// SimulationResult is the full month-by-month forecast. The same input
// always produces the same result.
type SimulationResult struct {
	History []SimulationMonth `json:"history"`
	Summary SimulationSummary `json:"summary"`
}
