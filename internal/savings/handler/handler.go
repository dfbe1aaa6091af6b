// Package handler exposes the savings HTTP endpoints.
package handler

import (
	"heatpump_portal_backend/internal/savings/service"
	"heatpump_portal_backend/internal/savings/transport"
	"heatpump_portal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler serves GET /api/v1/savings and GET /api/v1/savings/comparison.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetSavings estimates annual savings for one equipment tier.
func (h *Handler) GetSavings(c *gin.Context) {
	req := transport.SavingsRequest{
		Address:     c.Query("address"),
		HeatingFuel: c.Query("heating_fuel"),
		Upgrade:     c.Query("upgrade"),
	}

	resp, err := h.svc.Estimate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// GetComparison runs the three-tier side-by-side comparison.
func (h *Handler) GetComparison(c *gin.Context) {
	resp, err := h.svc.Compare(c.Request.Context(), c.Query("address"), c.Query("heating_fuel"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
