// Package service implements the health impacts aggregation and its
// demo-data fallback.
package service

import (
	"context"
	"errors"

	"heatpump_portal_backend/internal/healthimpacts/client"
	"heatpump_portal_backend/internal/healthimpacts/transport"
	"heatpump_portal_backend/platform/apperr"
	"heatpump_portal_backend/platform/logger"
)

// UpstreamClient fetches raw metric rows from the provider.
type UpstreamClient interface {
	FetchImpacts(ctx context.Context, stateFips, countyFips string) ([]transport.MetricRow, error)
}

// Service aggregates per-metric rows into per-county records.
type Service struct {
	client UpstreamClient
	demo   map[string][]transport.MetricRow
	log    *logger.Logger
}

// New creates the service with the bundled demo dataset as fallback.
func New(upstream UpstreamClient, log *logger.Logger) *Service {
	return &Service{
		client: upstream,
		demo:   demoRows,
		log:    log,
	}
}

// NewWithDemoTable creates the service with a caller-supplied fallback
// table. Used by tests and by deployments that ship their own dataset.
func NewWithDemoTable(upstream UpstreamClient, demo map[string][]transport.MetricRow, log *logger.Logger) *Service {
	return &Service{
		client: upstream,
		demo:   demo,
		log:    log,
	}
}

// Aggregate answers one health-impacts request. Upstream failures are
// never propagated: the bundled demo table is substituted and the
// response flagged with IsDemo. Only a missing state FIPS is an error.
func (s *Service) Aggregate(ctx context.Context, stateFips, countyFips string) (*transport.ImpactsResponse, error) {
	if stateFips == "" {
		return nil, apperr.Validation("Missing required parameter: state_fips")
	}

	rows, err := s.client.FetchImpacts(ctx, stateFips, countyFips)

	isDemo := false
	if err != nil {
		status := 0
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			status = statusErr.Status
		}
		s.log.WithContext(ctx).DemoFallback("health-impacts", stateFips, status, err)

		rows = s.demoTable(stateFips, countyFips)
		isDemo = true
	}

	resp := &transport.ImpactsResponse{
		Success: true,
		Data:    aggregateByCounty(rows),
		IsDemo:  isDemo,
	}
	if isDemo {
		resp.DemoMessage = DemoMessage
	}

	return resp, nil
}

// demoTable returns the bundled rows for a state, filtered to one county
// when a concrete county code was requested. Unknown states yield an
// empty set; that is still a successful (zero-record) response.
func (s *Service) demoTable(stateFips, countyFips string) []transport.MetricRow {
	stateRows := s.demo[stateFips]
	if countyFips == "" || countyFips == client.CountyWildcard {
		return stateRows
	}

	filtered := make([]transport.MetricRow, 0, len(stateRows))
	for _, row := range stateRows {
		if row.CountyFips == countyFips {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// aggregateByCounty folds the flat row sequence into one record per
// distinct (stateFips, countyFips) pair, in first-seen order. Rows
// without a county FIPS (state-level aggregates) group under a
// synthetic "state" key. Each metric sets its accumulator field; the
// provider sends at most one row per (county, metric), so set-not-sum
// also sidesteps mixing tons and kilograms within one sum.
func aggregateByCounty(rows []transport.MetricRow) []transport.CountyHealthRecord {
	index := make(map[string]int, len(rows))
	records := make([]transport.CountyHealthRecord, 0, len(rows))

	for _, row := range rows {
		countyKey := row.CountyFips
		if countyKey == "" {
			countyKey = "state"
		}
		key := row.StateFips + "-" + countyKey

		i, ok := index[key]
		if !ok {
			county := row.County
			if county == "" {
				county = row.State
			}
			records = append(records, transport.CountyHealthRecord{
				County:     county,
				CountyFips: row.CountyFips,
				State:      row.State,
				StateFips:  row.StateFips,
				Households: row.Households,
				Warnings:   row.Warnings,
			})
			i = len(records) - 1
			index[key] = i
		}

		rec := &records[i]
		switch row.Metric {
		case client.MetricMortality:
			rec.MortalityReduction = row.Value
		case client.MetricNOx:
			rec.NoxReduced = row.Value
		case client.MetricPM25:
			rec.Pm25Reduced = row.Value
		case client.MetricVOC:
			rec.VocReduced = row.Value
		case client.MetricSO2:
			rec.So2Reduced = row.Value
		default:
			// unmapped metric tags are not an error; the upstream
			// metric set may be a superset of what we display
		}

		if rec.Warnings == "" && row.Warnings != "" {
			rec.Warnings = row.Warnings
		}
	}

	return records
}
