// Package transport defines the request/response shapes for the savings
// endpoints.
package transport

// SavingsRequest captures the query parameters of GET /api/v1/savings.
// Address and HeatingFuel are required; Upgrade defaults to the mid
// efficiency tier when omitted.
type SavingsRequest struct {
	Address     string `form:"address"`
	HeatingFuel string `form:"heating_fuel"`
	Upgrade     string `form:"upgrade"`
}

// Stats carries the distribution of an annualized dollar delta.
type Stats struct {
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Percentile20 float64 `json:"percentile20"`
	Percentile80 float64 `json:"percentile80"`
}

// MeanOnly carries a single mean value for deltas the UI only shows as
// one number.
type MeanOnly struct {
	Mean float64 `json:"mean"`
}

// SavingsResponse is the success payload. Savings and reductions are
// reported as positive numbers when the upgrade lowers cost/emissions;
// all figures are rounded to 2 decimals.
type SavingsResponse struct {
	Success            bool     `json:"success"`
	Savings            string   `json:"savings"`
	RawSavings         float64  `json:"rawSavings"`
	EstimateType       string   `json:"estimateType"`
	Upgrade            string   `json:"upgrade"`
	AnnualSavings      Stats    `json:"annualSavings"`
	MonthlySavings     Stats    `json:"monthlySavings"`
	EnergyChange       MeanOnly `json:"energyChange"`
	EmissionsReduction MeanOnly `json:"emissionsReduction"`
}

// ComparisonResponse holds the three-tier side-by-side comparison, in
// fixed tier order (lowest to highest efficiency).
type ComparisonResponse struct {
	Success bool              `json:"success"`
	Results []SavingsResponse `json:"results"`
}

// Estimate is the parsed upstream result handed from the client to the
// service, still in the provider's sign convention (negative = savings).
type Estimate struct {
	EstimateType  string
	Cost          DeltaStats
	EnergyMean    float64
	EmissionsMean float64
}

// DeltaStats mirrors the provider's per-quantity statistics.
type DeltaStats struct {
	Mean         float64
	Median       float64
	Percentile20 float64
	Percentile80 float64
}
