// Package transport defines the request/response shapes for the
// health impacts endpoint.
package transport

// ImpactsRequest is the JSON body accepted by POST /api/v1/health-impacts.
// CountyFips supports three forms: a concrete 3-digit code scopes the
// query to one county, the sentinel "*" requests every county in the
// state, and omitting it requests a state-level aggregate.
type ImpactsRequest struct {
	StateFips  string `json:"state_fips"`
	CountyFips string `json:"county_fips"`
}

// MetricRow is one observation of one pollutant or health metric for a
// (state, county, upgrade) triple, either mapped from the upstream
// provider or taken from the bundled demo table.
type MetricRow struct {
	State      string  `json:"state"`
	StateFips  string  `json:"state_fips"`
	CountyFips string  `json:"county_fips,omitempty"`
	County     string  `json:"county,omitempty"`
	Upgrade    string  `json:"upgrade"`
	Households int     `json:"households,omitempty"`
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
	Units      string  `json:"units"`
	Warnings   string  `json:"warnings,omitempty"`
}

// CountyHealthRecord is the aggregated output: one record per distinct
// (stateFips, countyFips) pair seen in the input rows. Accumulator
// fields left at 0 mean the metric was never reported for that county;
// the aggregator does not distinguish "measured zero" from "not
// reported". Pollutant values pass through in whatever unit the
// provider reported (see the per-row units caveat in the client).
type CountyHealthRecord struct {
	County             string  `json:"county"`
	CountyFips         string  `json:"countyFips"`
	State              string  `json:"state"`
	StateFips          string  `json:"stateFips"`
	MortalityReduction float64 `json:"mortalityReduction"`
	NoxReduced         float64 `json:"noxReduced"`
	Pm25Reduced        float64 `json:"pm25Reduced"`
	VocReduced         float64 `json:"vocReduced"`
	So2Reduced         float64 `json:"so2Reduced"`
	Households         int     `json:"households,omitempty"`
	Warnings           string  `json:"warnings,omitempty"`
}

// ImpactsResponse is the endpoint's success payload.
type ImpactsResponse struct {
	Success     bool                 `json:"success"`
	Data        []CountyHealthRecord `json:"data"`
	IsDemo      bool                 `json:"isDemo"`
	DemoMessage string               `json:"demoMessage,omitempty"`
}
