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

// AdmissionController serves both the admission and the transfer routes.
type AdmissionController struct {
	Log              *zap.Logger
	AdmissionUsecase contracts.AdmissionUsecase
}

func NewAdmissionController(logger *zap.Logger, admissionUsecase contracts.AdmissionUsecase) *AdmissionController {
	return &AdmissionController{
		Log:              logger,
		AdmissionUsecase: admissionUsecase,
	}
}

func (ctrl *AdmissionController) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.AdmitPatient)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeAdmitPatientRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AdmissionUsecase.AdmitPatient(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AdmitPatientSuccessMessage, response)
}

func (ctrl *AdmissionController) TransferPatient(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.TransferPatient)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeTransferPatientRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AdmissionUsecase.TransferPatient(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TransferPatientSuccessMessage, response)
}

func (ctrl *AdmissionController) DischargePatient(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.DischargePatient)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeDischargePatientRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AdmissionUsecase.DischargePatient(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DischargePatientSuccessMessage, response)
}

func (ctrl *AdmissionController) GetAdmissionStatus(w http.ResponseWriter, r *http.Request) {
	admissionID, err := idParam(r, constvars.URLParamAdmissionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	status, err := ctrl.AdmissionUsecase.GetAdmissionStatus(ctx, admissionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdmissionStatusSuccessMessage, status)
}

func (ctrl *AdmissionController) ListAdmissions(w http.ResponseWriter, r *http.Request) {
	query := utils.BuildAdmissionQuery(r)
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	admissions, total, err := ctrl.AdmissionUsecase.ListAdmissions(ctx, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAdmissionsSuccessMessage, pagination, admissions)
}
