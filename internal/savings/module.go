// Package savings provides the savings estimator bounded context module.
package savings

import (
	apphttp "heatpump_portal_backend/internal/http"
	"heatpump_portal_backend/internal/savings/client"
	"heatpump_portal_backend/internal/savings/handler"
	"heatpump_portal_backend/internal/savings/service"
	"heatpump_portal_backend/platform/config"
	"heatpump_portal_backend/platform/logger"
	"heatpump_portal_backend/platform/validator"
)

// Module wires the savings estimator HTTP routes.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the savings module.
func NewModule(cfg config.ProviderConfig, val *validator.Validator, log *logger.Logger) *Module {
	apiClient := client.New(cfg, log)
	svc := service.New(apiClient, val, log)
	h := handler.New(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "savings"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/savings")
	group.GET("", m.handler.GetSavings)
	group.GET("/comparison", m.handler.GetComparison)
}

var _ apphttp.Module = (*Module)(nil)
