package controllers

import (
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuditController struct {
	Log          *zap.Logger
	AuditUsecase contracts.AuditUsecase
}

func NewAuditController(logger *zap.Logger, auditUsecase contracts.AuditUsecase) *AuditController {
	return &AuditController{
		Log:          logger,
		AuditUsecase: auditUsecase,
	}
}

func (ctrl *AuditController) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := utils.BuildAuditLogQuery(r)
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	entries, total, err := ctrl.AuditUsecase.ListAuditLogs(ctx, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAuditLogsSuccessMessage, pagination, entries)
}
