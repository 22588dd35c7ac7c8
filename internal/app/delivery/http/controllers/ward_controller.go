package controllers

import (
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WardController struct {
	Log         *zap.Logger
	WardUsecase contracts.WardUsecase
}

func NewWardController(logger *zap.Logger, wardUsecase contracts.WardUsecase) *WardController {
	return &WardController{
		Log:         logger,
		WardUsecase: wardUsecase,
	}
}

func (ctrl *WardController) CreateWard(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateWard)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateWardRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	// Send it to be processed by usecase
	ward, err := ctrl.WardUsecase.CreateWard(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateWardSuccessMessage, ward)
}

func (ctrl *WardController) ListWards(w http.ResponseWriter, r *http.Request) {
	query := utils.BuildWardQuery(r)
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	wards, total, err := ctrl.WardUsecase.ListWards(ctx, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetWardsSuccessMessage, pagination, wards)
}

func (ctrl *WardController) GetWard(w http.ResponseWriter, r *http.Request) {
	wardID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	ward, err := ctrl.WardUsecase.GetWard(ctx, wardID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWardSuccessMessage, ward)
}

func (ctrl *WardController) GetWardBeds(w http.ResponseWriter, r *http.Request) {
	wardID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	beds, err := ctrl.WardUsecase.GetWardBeds(ctx, wardID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWardBedsSuccessMessage, beds)
}

func (ctrl *WardController) UpdateWard(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	wardID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateWard)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	ward, err := ctrl.WardUsecase.UpdateWard(ctx, session, wardID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateWardSuccessMessage, ward)
}

func (ctrl *WardController) DeleteWard(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	wardID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	err = ctrl.WardUsecase.DeleteWard(ctx, session, wardID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteWardSuccessMessage, nil)
}

func (ctrl *WardController) ExportCensus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	census, err := ctrl.WardUsecase.ExportCensus(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, constvars.MIMEApplicationXLSX, census.FileName, census.Content)
}
