// Package analysis computes a year-by-year comparison of buying a home with a
// mortgage against renting and investing the difference, and summarizes which
// option costs less over the horizon.
package analysis

import (
	"fmt"

	"github.com/iwvelando/rent-or-own/pkg/mathutil"
	"github.com/iwvelando/rent-or-own/pkg/validation"
	"go.uber.org/zap"
)

// ErrInvalidInput is matched by every validation failure returned from this
// package.
var ErrInvalidInput = validation.ErrInvalidInput

// Analysis is the complete result for one set of inputs.
type Analysis struct {
	Inputs           Inputs           `json:"inputs"`
	MortgageSchedule []MortgageRecord `json:"mortgageSchedule"`
	RentSchedule     []RentRecord     `json:"rentSchedule"`
	Summary          Summary          `json:"summary"`
}

// Engine runs analyses and logs the intermediate figures.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run validates inputs and produces both schedules and the summary. The
// result depends only on inputs.
func (e *Engine) Run(inputs Inputs) (*Analysis, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	mortgage, err := GenerateMortgageSchedule(inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mortgage schedule: %w", err)
	}
	var monthlyPayment float64
	if len(mortgage) > 0 {
		monthlyPayment = mortgage[0].MonthlyPayment
	}
	rent := GenerateRentSchedule(inputs, monthlyPayment)

	for i := range mortgage {
		e.logger.Debug("computed year",
			zap.String("op", "analysis.Run"),
			zap.Int("year", mortgage[i].Year),
			zap.Float64("interest", mortgage[i].InterestPaid),
			zap.Float64("principal", mortgage[i].PrincipalPaid),
			zap.Float64("remainingBalance", mortgage[i].RemainingBalance),
			zap.Float64("homeValue", mortgage[i].HomeValue),
			zap.Float64("annualRent", rent[i].Base().AnnualRent),
		)
	}

	summary := Summarize(inputs, mortgage, rent)
	if !mathutil.IsFinite(summary.OwnershipNetCost) || !mathutil.IsFinite(summary.RentNetCost) {
		e.logger.Warn("net costs are not finite",
			zap.String("op", "analysis.Run"),
			zap.Int("years", inputs.Years),
			zap.Float64("ownershipNetCost", summary.OwnershipNetCost),
			zap.Float64("rentNetCost", summary.RentNetCost),
		)
		return nil, validation.Invalid("inputs", "inputs overflow numeric range")
	}
	e.logger.Debug("analysis complete",
		zap.String("op", "analysis.Run"),
		zap.Int("years", inputs.Years),
		zap.Float64("ownershipNetCost", summary.OwnershipNetCost),
		zap.Float64("rentNetCost", summary.RentNetCost),
		zap.String("winner", string(summary.Winner)),
	)

	return &Analysis{
		Inputs:           inputs,
		MortgageSchedule: mortgage,
		RentSchedule:     rent,
		Summary:          summary,
	}, nil
}

// GenerateCompleteAnalysis runs an analysis without logging.
func GenerateCompleteAnalysis(inputs Inputs) (*Analysis, error) {
	return NewEngine(nil).Run(inputs)
}
