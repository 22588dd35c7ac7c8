package audit

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type auditUsecase struct {
	AuditLogRepository contracts.AuditLogRepository
	Log                *zap.Logger
}

func NewAuditUsecase(auditLogRepository contracts.AuditLogRepository, logger *zap.Logger) contracts.AuditUsecase {
	return &auditUsecase{
		AuditLogRepository: auditLogRepository,
		Log:                logger,
	}
}

func (uc *auditUsecase) ListAuditLogs(ctx context.Context, query *requests.AuditLogQuery) ([]models.AuditLog, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("auditUsecase.ListAuditLogs called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entries, total, err := uc.AuditLogRepository.FindAll(ctx, models.AuditLogFilter{
		ResourceType: query.ResourceType,
		ResourceID:   query.ResourceID,
		PatientID:    query.PatientID,
		Action:       query.Action,
		Page:         query.Page,
		PageSize:     query.PageSize,
	})
	if err != nil {
		uc.Log.Error("auditUsecase.ListAuditLogs error finding audit logs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return entries, total, nil
}
