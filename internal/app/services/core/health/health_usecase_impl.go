package health

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	dependencyUp   = "connected"
	dependencyDown = "disconnected"

	pingTimeout = 2 * time.Second
)

// Dependency is one backing service reported by the health endpoint.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type healthUsecase struct {
	Dependencies []Dependency
	Version      string
	StartedAt    time.Time
	Log          *zap.Logger
}

func NewHealthUsecase(version string, startedAt time.Time, dependencies []Dependency, logger *zap.Logger) contracts.HealthUsecase {
	return &healthUsecase{
		Dependencies: dependencies,
		Version:      version,
		StartedAt:    startedAt,
		Log:          logger,
	}
}

func (uc *healthUsecase) Check(ctx context.Context) *responses.HealthCheck {
	requestID := utils.GetRequestID(ctx)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]string, len(uc.Dependencies))
		healthy = true
	)
	for _, dependency := range uc.Dependencies {
		wg.Add(1)
		go func(dependency Dependency) {
			defer wg.Done()
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()

			state := dependencyUp
			if err := dependency.Ping(pingCtx); err != nil {
				state = dependencyDown
				uc.Log.Warn("healthUsecase.Check dependency unavailable",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String("dependency", dependency.Name),
					zap.Error(err),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[dependency.Name] = state
			if state == dependencyDown {
				healthy = false
			}
		}(dependency)
	}
	wg.Wait()

	status := constvars.HealthStatusOK
	if !healthy {
		status = constvars.HealthStatusDegraded
	}
	now := time.Now().UTC()
	return &responses.HealthCheck{
		Status:       status,
		Timestamp:    now,
		Uptime:       now.Sub(uc.StartedAt).Truncate(time.Second).String(),
		Version:      uc.Version,
		Dependencies: results,
	}
}
