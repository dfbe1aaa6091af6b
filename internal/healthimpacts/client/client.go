// Package client provides the HTTP client for the Rewiring America
// health impacts API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"heatpump_portal_backend/internal/healthimpacts/transport"
	"heatpump_portal_backend/platform/config"
	"heatpump_portal_backend/platform/logger"
)

const (
	impactsPath = "/api/v2/etools/health-impacts"

	// CanonicalUpgrade is the single equipment tier this endpoint queries.
	CanonicalUpgrade = "hvac__heat_pump_seer18_hspf10"

	// CountyWildcard requests every county in the state.
	CountyWildcard = "*"
)

// Metric tags requested from the provider. The aggregator only displays
// these five; anything else in a response is ignored.
const (
	MetricMortality = "avoided_premature_mortality_incidence"
	MetricNOx       = "nitrogen_oxides"
	MetricPM25      = "fine_particulate_matter"
	MetricVOC       = "volatile_organic_compounds"
	MetricSO2       = "sulfur_dioxide"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("health impacts upstream status %d", e.Status)
}

// Client is the HTTP client for the health impacts API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a new health impacts API client.
func New(cfg config.ProviderConfig, log *logger.Logger) *Client {
	timeout := cfg.GetUpstreamTimeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.GetProviderBaseURL(),
		apiKey:     cfg.GetProviderAPIKey(),
		log:        log,
	}
}

type impactsRequestBody struct {
	Metrics    []string `json:"metrics"`
	Upgrade    []string `json:"upgrade"`
	StateFips  []string `json:"state_fips"`
	CountyFips []string `json:"county_fips,omitempty"`
}

// FetchImpacts queries the provider for the fixed five-metric set scoped
// to stateFips. countyFips follows the request sentinel rules: "*" for
// all counties, a concrete code for one county, empty for a state-level
// aggregate.
func (c *Client) FetchImpacts(ctx context.Context, stateFips, countyFips string) ([]transport.MetricRow, error) {
	body := impactsRequestBody{
		Metrics: []string{
			MetricMortality,
			MetricNOx,
			MetricPM25,
			MetricVOC,
			MetricSO2,
		},
		Upgrade:   []string{CanonicalUpgrade},
		StateFips: []string{stateFips},
	}
	if countyFips != "" {
		body.CountyFips = []string{countyFips}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := c.baseURL + impactsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("health impacts request failed", "error", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError(impactsPath, resp.StatusCode, fmt.Errorf("non-200 response"))
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var envelope struct {
		Data []apiImpactRow `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Error("health impacts decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	rows := make([]transport.MetricRow, 0, len(envelope.Data))
	for _, api := range envelope.Data {
		rows = append(rows, api.toTransport(stateFips))
	}

	return rows, nil
}

// apiImpactRow is the raw provider row. The provider has shipped two
// field-naming revisions; this struct accepts both and toTransport picks
// whichever is populated. Treat this as the only place that knows about
// upstream naming.
type apiImpactRow struct {
	// current revision
	StateAbbreviation  string   `json:"state_abbreviation"`
	CountyFips         string   `json:"county_fips"`
	CountyName         string   `json:"county_name"`
	UpgradeOption      string   `json:"upgrade_option"`
	NumberOfHouseholds *int     `json:"number_of_households"`
	Impact             *float64 `json:"impact"`

	// older revision
	State      string   `json:"state"`
	County     string   `json:"county"`
	Upgrade    string   `json:"upgrade"`
	Households *int     `json:"households"`
	Value      *float64 `json:"value"`

	// stable across revisions
	Metric   string  `json:"metric"`
	Units    string  `json:"units"`
	Warnings *string `json:"warnings"`
}

// toTransport maps a provider row to the internal shape. The
// caller-supplied stateFips is authoritative; the provider does not
// reliably echo it back. Pollutant values are passed through unmodified:
// observed revisions disagree on tons/year vs kg/year, so the per-row
// Units string is the only trustworthy unit indicator.
func (a *apiImpactRow) toTransport(stateFips string) transport.MetricRow {
	row := transport.MetricRow{
		StateFips:  stateFips,
		CountyFips: a.CountyFips,
		Metric:     a.Metric,
		Units:      a.Units,
	}

	row.State = firstNonEmpty(a.StateAbbreviation, a.State)
	row.County = firstNonEmpty(a.CountyName, a.County)
	row.Upgrade = firstNonEmpty(a.UpgradeOption, a.Upgrade)

	if a.NumberOfHouseholds != nil {
		row.Households = *a.NumberOfHouseholds
	} else if a.Households != nil {
		row.Households = *a.Households
	}

	if a.Impact != nil {
		row.Value = *a.Impact
	} else if a.Value != nil {
		row.Value = *a.Value
	}

	if a.Warnings != nil {
		row.Warnings = *a.Warnings
	}

	return row
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
