package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heatpump_portal_backend/platform/config"
	"heatpump_portal_backend/platform/logger"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		ProviderAPIKey:  "test_key",
		ProviderBaseURL: baseURL,
		UpstreamTimeout: 2 * time.Second,
	}
}

func TestFetchImpacts_SendsFixedMetricSetAndAuth(t *testing.T) {
	var gotBody impactsRequestBody
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), logger.New("test"))
	if _, err := c.FetchImpacts(context.Background(), "08", "*"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test_key" {
		t.Fatalf("expected bearer auth header, got %q", gotAuth)
	}
	if len(gotBody.Metrics) != 5 {
		t.Fatalf("expected 5 metrics, got %d", len(gotBody.Metrics))
	}
	if len(gotBody.Upgrade) != 1 || gotBody.Upgrade[0] != CanonicalUpgrade {
		t.Fatalf("expected canonical upgrade, got %v", gotBody.Upgrade)
	}
	if len(gotBody.StateFips) != 1 || gotBody.StateFips[0] != "08" {
		t.Fatalf("expected state_fips [08], got %v", gotBody.StateFips)
	}
	if len(gotBody.CountyFips) != 1 || gotBody.CountyFips[0] != "*" {
		t.Fatalf("expected county_fips [*], got %v", gotBody.CountyFips)
	}
}

func TestFetchImpacts_OmitsCountyForStateAggregate(t *testing.T) {
	var gotBody impactsRequestBody

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), logger.New("test"))
	if _, err := c.FetchImpacts(context.Background(), "36", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBody.CountyFips != nil {
		t.Fatalf("expected county_fips omitted, got %v", gotBody.CountyFips)
	}
}

func TestFetchImpacts_MapsCurrentRevisionFieldNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{
			"state_abbreviation": "CO",
			"state_fips": "XX",
			"county_fips": "031",
			"county_name": "Denver",
			"upgrade_option": "hvac__heat_pump_seer18_hspf10",
			"number_of_households": 100000,
			"metric": "nitrogen_oxides",
			"impact": 150.8,
			"units": "kilograms_per_year",
			"warnings": "estimate quality low"
		}]}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), logger.New("test"))
	rows, err := c.FetchImpacts(context.Background(), "08", "031")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.State != "CO" || row.County != "Denver" || row.CountyFips != "031" {
		t.Fatalf("unexpected geo fields: %+v", row)
	}
	if row.StateFips != "08" {
		t.Fatalf("caller state_fips must be authoritative, got %q", row.StateFips)
	}
	if row.Upgrade != CanonicalUpgrade {
		t.Fatalf("unexpected upgrade: %q", row.Upgrade)
	}
	if row.Households != 100000 {
		t.Fatalf("expected households 100000, got %d", row.Households)
	}
	if row.Value != 150.8 || row.Units != "kilograms_per_year" {
		t.Fatalf("value/units must pass through raw: %+v", row)
	}
	if row.Warnings != "estimate quality low" {
		t.Fatalf("unexpected warnings: %q", row.Warnings)
	}
}

func TestFetchImpacts_MapsOlderRevisionFieldNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{
			"state": "CO",
			"county_fips": "031",
			"county": "Denver",
			"upgrade": "hvac__heat_pump_seer18_hspf10",
			"households": 95000,
			"metric": "fine_particulate_matter",
			"value": 12.3,
			"units": "tons_per_year"
		}]}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), logger.New("test"))
	rows, err := c.FetchImpacts(context.Background(), "08", "031")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.State != "CO" || row.County != "Denver" {
		t.Fatalf("older revision fields not mapped: %+v", row)
	}
	if row.Households != 95000 {
		t.Fatalf("expected households 95000, got %d", row.Households)
	}
	if row.Value != 12.3 || row.Units != "tons_per_year" {
		t.Fatalf("unexpected value/units: %+v", row)
	}
}

func TestFetchImpacts_Non200ReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), logger.New("test"))
	_, err := c.FetchImpacts(context.Background(), "08", "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.Status != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", statusErr.Status)
	}
}
