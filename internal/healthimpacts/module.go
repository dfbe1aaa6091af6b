// Package healthimpacts provides the health impacts bounded context module.
package healthimpacts

import (
	"heatpump_portal_backend/internal/healthimpacts/client"
	"heatpump_portal_backend/internal/healthimpacts/handler"
	"heatpump_portal_backend/internal/healthimpacts/service"
	apphttp "heatpump_portal_backend/internal/http"
	"heatpump_portal_backend/platform/config"
	"heatpump_portal_backend/platform/logger"
)

// Module wires the health impacts routes.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the health impacts module.
func NewModule(cfg config.ProviderConfig, log *logger.Logger) *Module {
	apiClient := client.New(cfg, log)
	svc := service.New(apiClient, log)
	h := handler.New(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "healthimpacts"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/health-impacts", m.handler.GetImpacts)
}

var _ apphttp.Module = (*Module)(nil)
