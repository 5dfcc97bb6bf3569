package middlewares

import (
	"reservation-center/internal/app/config"
	"reservation-center/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionService    contracts.SessionService
	// DashboardRegistry, when set, releases the dashboards of sessions that are
	// no longer stored.
	DashboardRegistry contracts.DashboardRegistry
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, dashboardRegistry contracts.DashboardRegistry, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:               logger,
		SessionService:    sessionService,
		DashboardRegistry: dashboardRegistry,
		InternalConfig:    internalConfig,
	}
}
