// Package handler exposes the health impacts HTTP endpoint.
package handler

import (
	"net/http"

	"heatpump_portal_backend/internal/healthimpacts/service"
	"heatpump_portal_backend/internal/healthimpacts/transport"
	"heatpump_portal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler serves POST /api/v1/health-impacts.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetImpacts aggregates county-level health impacts for a state.
func (h *Handler) GetImpacts(c *gin.Context) {
	var req transport.ImpactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Missing required parameter: state_fips", nil)
		return
	}

	resp, err := h.svc.Aggregate(c.Request.Context(), req.StateFips, req.CountyFips)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
