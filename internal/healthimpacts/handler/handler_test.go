package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heatpump_portal_backend/internal/healthimpacts/service"
	"heatpump_portal_backend/internal/healthimpacts/transport"
	"heatpump_portal_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type stubClient struct {
	rows []transport.MetricRow
	err  error
}

func (s *stubClient) FetchImpacts(ctx context.Context, stateFips, countyFips string) ([]transport.MetricRow, error) {
	return s.rows, s.err
}

func newTestRouter(upstream *stubClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(upstream, logger.New("test"))
	h := New(svc)

	engine := gin.New()
	engine.POST("/api/v1/health-impacts", h.GetImpacts)
	return engine
}

func TestGetImpacts_MissingStateFipsReturns400(t *testing.T) {
	engine := newTestRouter(&stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/health-impacts", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Missing required parameter") {
		t.Fatalf("expected missing-parameter message, got %q", msg)
	}
}

func TestGetImpacts_UpstreamFailureServesDemoData(t *testing.T) {
	engine := newTestRouter(&stubClient{err: errors.New("dial tcp: connection refused")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/health-impacts", strings.NewReader(`{"state_fips": "08"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp transport.ImpactsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !resp.IsDemo {
		t.Fatalf("expected successful demo response, got %+v", resp)
	}
	if !strings.Contains(resp.DemoMessage, "Health Impacts API requires special access") {
		t.Fatalf("expected demo advisory, got %q", resp.DemoMessage)
	}
	if len(resp.Data) == 0 {
		t.Fatal("expected demo records for Colorado")
	}
}

func TestGetImpacts_LiveDataAggregated(t *testing.T) {
	rows := []transport.MetricRow{
		{State: "NY", StateFips: "36", CountyFips: "061", County: "New York", Metric: "avoided_premature_mortality_incidence", Value: 8.3},
		{State: "NY", StateFips: "36", CountyFips: "061", County: "New York", Metric: "nitrogen_oxides", Value: 456.7},
	}
	engine := newTestRouter(&stubClient{rows: rows})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/health-impacts", strings.NewReader(`{"state_fips": "36", "county_fips": "061"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp transport.ImpactsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.IsDemo {
		t.Fatal("expected live data")
	}
	if resp.DemoMessage != "" {
		t.Fatalf("demoMessage must be absent for live data, got %q", resp.DemoMessage)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 aggregated record, got %d", len(resp.Data))
	}
	if resp.Data[0].MortalityReduction != 8.3 || resp.Data[0].NoxReduced != 456.7 {
		t.Fatalf("unexpected aggregation: %+v", resp.Data[0])
	}
}
