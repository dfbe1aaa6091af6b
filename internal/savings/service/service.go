// Package service implements the savings estimate and the three-tier
// comparison fan-out.
package service

import (
	"context"
	"fmt"
	"math"

	"heatpump_portal_backend/internal/savings/transport"
	"heatpump_portal_backend/platform/apperr"
	"heatpump_portal_backend/platform/logger"
	"heatpump_portal_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

// DefaultUpgrade is the mid efficiency tier used when the caller does
// not specify one.
const DefaultUpgrade = "hvac__heat_pump_seer18_hspf10"

// ComparisonUpgrades is the fixed tier ordering of the side-by-side
// comparison, lowest to highest efficiency.
var ComparisonUpgrades = []string{
	"hvac__heat_pump_seer15_hspf9",
	"hvac__heat_pump_seer18_hspf10",
	"hvac__heat_pump_seer24_hspf13",
}

const heatingFuelTag = "oneof=fuel_oil natural_gas propane electricity"

// EstimatorClient runs one upstream address-level estimate.
type EstimatorClient interface {
	FetchEstimate(ctx context.Context, address, heatingFuel, upgrade string) (*transport.Estimate, error)
}

// Service validates savings requests and reshapes upstream estimates.
type Service struct {
	client EstimatorClient
	val    *validator.Validator
	log    *logger.Logger
}

func New(client EstimatorClient, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{
		client: client,
		val:    val,
		log:    log,
	}
}

// Estimate answers one savings request. Upstream failures are fatal for
// this endpoint; there is no fallback.
func (s *Service) Estimate(ctx context.Context, req transport.SavingsRequest) (*transport.SavingsResponse, error) {
	if req.Address == "" || req.HeatingFuel == "" {
		return nil, apperr.Validation("Missing required parameters: address and heating_fuel")
	}
	if err := s.val.Var(req.HeatingFuel, heatingFuelTag); err != nil {
		return nil, apperr.Validation(fmt.Sprintf("Invalid heating_fuel: %s", req.HeatingFuel))
	}

	upgrade := req.Upgrade
	if upgrade == "" {
		upgrade = DefaultUpgrade
	}

	estimate, err := s.client.FetchEstimate(ctx, req.Address, req.HeatingFuel, upgrade)
	if err != nil {
		s.log.WithContext(ctx).Error("savings estimate failed", "error", err, "upgrade", upgrade)
		return nil, apperr.Upstream("Failed to calculate savings", err).WithDetails(err.Error())
	}

	return buildResponse(upgrade, estimate), nil
}

// Compare fans out one estimate per comparison tier concurrently and
// joins all-or-nothing: a single failing tier fails the whole
// comparison, successful siblings included. Results keep the fixed tier
// order, not completion order.
func (s *Service) Compare(ctx context.Context, address, heatingFuel string) (*transport.ComparisonResponse, error) {
	if address == "" || heatingFuel == "" {
		return nil, apperr.Validation("Missing required parameters: address and heating_fuel")
	}
	if err := s.val.Var(heatingFuel, heatingFuelTag); err != nil {
		return nil, apperr.Validation(fmt.Sprintf("Invalid heating_fuel: %s", heatingFuel))
	}

	results := make([]transport.SavingsResponse, len(ComparisonUpgrades))

	g, gctx := errgroup.WithContext(ctx)
	for i, upgrade := range ComparisonUpgrades {
		i, upgrade := i, upgrade
		g.Go(func() error {
			estimate, err := s.client.FetchEstimate(gctx, address, heatingFuel, upgrade)
			if err != nil {
				return err
			}
			results[i] = *buildResponse(upgrade, estimate)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.WithContext(ctx).Error("savings comparison failed", "error", err)
		return nil, apperr.Upstream("Failed to fetch comparison data", err).WithDetails(err.Error())
	}

	return &transport.ComparisonResponse{
		Success: true,
		Results: results,
	}, nil
}

// buildResponse converts the provider's sign convention (negative =
// savings) into positive savings/reduction numbers and rounds every
// reported figure to 2 decimals.
func buildResponse(upgrade string, estimate *transport.Estimate) *transport.SavingsResponse {
	annual := transport.Stats{
		Mean:         round2(-estimate.Cost.Mean),
		Median:       round2(-estimate.Cost.Median),
		Percentile20: round2(-estimate.Cost.Percentile20),
		Percentile80: round2(-estimate.Cost.Percentile80),
	}
	monthly := transport.Stats{
		Mean:         round2(annual.Mean / 12),
		Median:       round2(annual.Median / 12),
		Percentile20: round2(annual.Percentile20 / 12),
		Percentile80: round2(annual.Percentile80 / 12),
	}

	rawSavings := -estimate.Cost.Mean
	if rawSavings == 0 {
		rawSavings = 0
	}

	return &transport.SavingsResponse{
		Success:            true,
		Savings:            fmt.Sprintf("$%.2f", rawSavings),
		RawSavings:         rawSavings,
		EstimateType:       estimate.EstimateType,
		Upgrade:            upgrade,
		AnnualSavings:      annual,
		MonthlySavings:     monthly,
		EnergyChange:       transport.MeanOnly{Mean: round2(estimate.EnergyMean)},
		EmissionsReduction: transport.MeanOnly{Mean: round2(-estimate.EmissionsMean)},
	}
}

// round2 rounds to 2 decimals, normalizing negative zero so formatted
// output never shows "-0.00".
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
