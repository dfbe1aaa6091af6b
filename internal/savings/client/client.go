// Package client provides the HTTP client for the Rewiring America REM
// address-level estimator API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"heatpump_portal_backend/internal/savings/transport"
	"heatpump_portal_backend/platform/config"
	"heatpump_portal_backend/platform/logger"
)

const remAddressPath = "/api/v1/rem/address"

// Client is the HTTP client for the REM estimator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a new REM API client.
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

// FetchEstimate runs one address-level estimate for the given upgrade.
func (c *Client) FetchEstimate(ctx context.Context, address, heatingFuel, upgrade string) (*transport.Estimate, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("heating_fuel", heatingFuel)
	params.Set("upgrade", upgrade)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, remAddressPath, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("rem request failed", "error", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError(remAddressPath, resp.StatusCode, fmt.Errorf("non-200 response"))
		return nil, fmt.Errorf("rem upstream status %d", resp.StatusCode)
	}

	var payload remResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("rem decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	delta := payload.FuelResults.Total.Delta
	return &transport.Estimate{
		EstimateType: payload.EstimateType,
		Cost: transport.DeltaStats{
			Mean:         delta.Cost.Mean.Value,
			Median:       delta.Cost.Median.Value,
			Percentile20: delta.Cost.Percentile20.Value,
			Percentile80: delta.Cost.Percentile80.Value,
		},
		EnergyMean:    delta.Energy.Mean.Value,
		EmissionsMean: delta.Emissions.Mean.Value,
	}, nil
}

// remResponse mirrors the relevant parts of the REM address payload.
type remResponse struct {
	EstimateType string `json:"estimate_type"`
	FuelResults  struct {
		Total struct {
			Delta struct {
				Cost      remStat `json:"cost"`
				Energy    remStat `json:"energy"`
				Emissions remStat `json:"emissions"`
			} `json:"delta"`
		} `json:"total"`
	} `json:"fuel_results"`
}

type remStat struct {
	Mean         remValue `json:"mean"`
	Median       remValue `json:"median"`
	Percentile20 remValue `json:"percentile_20"`
	Percentile80 remValue `json:"percentile_80"`
}

type remValue struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}
