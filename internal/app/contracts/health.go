package contracts

import (
	"context"
	"hospital-service/internal/pkg/dto/responses"
)

type HealthUsecase interface {
	Check(ctx context.Context) *responses.HealthCheck
}
