package controllers

import (
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthController struct {
	Log           *zap.Logger
	HealthUsecase contracts.HealthUsecase
}

func NewHealthController(logger *zap.Logger, healthUsecase contracts.HealthUsecase) *HealthController {
	return &HealthController{
		Log:           logger,
		HealthUsecase: healthUsecase,
	}
}

// Check answers 200 while every dependency is reachable and 503 otherwise,
// with the same body in both cases.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	report := ctrl.HealthUsecase.Check(r.Context())

	if report.Status != constvars.HealthStatusOK {
		utils.BuildSuccessResponse(w, constvars.StatusServiceUnavailable, constvars.HealthCheckDegradedMessage, report)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, report)
}
