package middlewares

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/services/shared/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	Metrics        *metrics.Collector
	LoginLimiter   *RateLimiter
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, metricsCollector *metrics.Collector, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		Metrics:        metricsCollector,
		LoginLimiter:   NewRateLimiter(logger, internalConfig.RateLimit.LoginRequestsPerMinute, internalConfig.RateLimit.LoginBurst),
		InternalConfig: internalConfig,
	}
}
