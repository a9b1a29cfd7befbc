// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iwvelando/rent-or-own/internal/analysis"
	"github.com/iwvelando/rent-or-own/internal/config"
	"go.uber.org/zap"
)

// Forecast holds all information related to a specific scenario's analysis.
type Forecast struct {
	Name     string                    `json:"name"`
	Inputs   analysis.Inputs           `json:"inputs"`
	Mortgage []analysis.MortgageRecord `json:"mortgageSchedule"`
	Rent     []analysis.RentRecord     `json:"rentSchedule"`
	Summary  analysis.Summary          `json:"summary"`
}

// GetForecast processes the Forecasts for all active Scenarios. Scenarios are
// evaluated concurrently and returned in configuration order. If any scenario
// fails no results are returned.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var active []config.Scenario
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}
		active = append(active, scenario)
	}

	results := make([]Forecast, len(active))
	errs := make([]error, len(active))

	var wg sync.WaitGroup
	for i, scenario := range active {
		wg.Add(1)
		go func(i int, scenario config.Scenario) {
			defer wg.Done()
			results[i], errs[i] = runScenario(logger, &conf, scenario)
		}(i, scenario)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(logger *zap.Logger, conf *config.Configuration, scenario config.Scenario) (Forecast, error) {
	inputs, err := conf.ResolveScenario(scenario)
	if err != nil {
		return Forecast{}, err
	}

	engine := analysis.NewEngine(logger.With(zap.String("scenario", scenario.Name)))
	result, err := engine.Run(inputs)
	if err != nil {
		return Forecast{}, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	logger.Debug("scenario analyzed",
		zap.String("op", "forecast.GetForecast"),
		zap.String("scenario", scenario.Name),
		zap.String("winner", string(result.Summary.Winner)),
		zap.Float64("savings", result.Summary.Savings),
	)

	return Forecast{
		Name:     scenario.Name,
		Inputs:   result.Inputs,
		Mortgage: result.MortgageSchedule,
		Rent:     result.RentSchedule,
		Summary:  result.Summary,
	}, nil
}
