package controllers

import (
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const multipartMaxMemory = 8 << 20

type LabController struct {
	Log        *zap.Logger
	LabUsecase contracts.LabUsecase
}

func NewLabController(logger *zap.Logger, labUsecase contracts.LabUsecase) *LabController {
	return &LabController{
		Log:        logger,
		LabUsecase: labUsecase,
	}
}

func (ctrl *LabController) CreateLabTest(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateLabTest)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateLabTestRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	labTest, err := ctrl.LabUsecase.CreateLabTest(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabTestSuccessMessage, labTest)
}

func (ctrl *LabController) ListLabTests(w http.ResponseWriter, r *http.Request) {
	query := utils.BuildLabTestQuery(r)
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	labTests, total, err := ctrl.LabUsecase.ListLabTests(ctx, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetLabTestsSuccessMessage, pagination, labTests)
}

func (ctrl *LabController) GetLabTest(w http.ResponseWriter, r *http.Request) {
	labTestID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	labTest, err := ctrl.LabUsecase.GetLabTest(ctx, labTestID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestSuccessMessage, labTest)
}

func (ctrl *LabController) UpdateLabTest(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	labTestID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateLabTest)
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

	labTest, err := ctrl.LabUsecase.UpdateLabTest(ctx, session, labTestID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLabTestSuccessMessage, labTest)
}

func (ctrl *LabController) DeleteLabTest(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	labTestID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	err = ctrl.LabUsecase.DeleteLabTest(ctx, session, labTestID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLabTestSuccessMessage, nil)
}

func (ctrl *LabController) RegisterTest(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RegisterTest)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeRegisterTestRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	registration, err := ctrl.LabUsecase.RegisterTest(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterTestSuccessMessage, registration)
}

func (ctrl *LabController) ListTestRegistrations(w http.ResponseWriter, r *http.Request) {
	query := utils.BuildTestRegistrationQuery(r)
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	registrations, total, err := ctrl.LabUsecase.ListTestRegistrations(ctx, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetTestRegistrationsSuccessMessage, pagination, registrations)
}

func (ctrl *LabController) GetTestRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	registration, err := ctrl.LabUsecase.GetTestRegistration(ctx, registrationID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestRegistrationSuccessMessage, registration)
}

func (ctrl *LabController) UpdateTestRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	registrationID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateTestRegistrationStatus)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Notes = strings.TrimSpace(request.Notes)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	registration, err := ctrl.LabUsecase.UpdateTestRegistrationStatus(ctx, session, registrationID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTestRegistrationSuccessMessage, registration)
}

func (ctrl *LabController) AddTestResult(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddTestResult)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeAddTestResultRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	result, err := ctrl.LabUsecase.AddTestResult(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddTestResultSuccessMessage, result)
}

func (ctrl *LabController) GetTestResult(w http.ResponseWriter, r *http.Request) {
	resultID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	result, err := ctrl.LabUsecase.GetTestResult(ctx, resultID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestResultSuccessMessage, result)
}

func (ctrl *LabController) ListPatientTestResults(w http.ResponseWriter, r *http.Request) {
	patientID, err := idParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	results, total, err := ctrl.LabUsecase.ListPatientTestResults(ctx, patientID, pagination)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetTestResultsSuccessMessage, paginationData, results)
}

func (ctrl *LabController) VerifyTestResult(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	resultID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	result, err := ctrl.LabUsecase.VerifyTestResult(ctx, session, resultID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyTestResultSuccessMessage, result)
}

func (ctrl *LabController) ReleaseTestResult(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	resultID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	result, err := ctrl.LabUsecase.ReleaseTestResult(ctx, session, resultID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReleaseTestResultSuccessMessage, result)
}

func (ctrl *LabController) UploadTestReport(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	resultID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = r.ParseMultipartForm(multipartMaxMemory)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldReportFile)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	meta := &requests.UploadTestReport{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	report, err := ctrl.LabUsecase.UploadTestReport(ctx, session, resultID, file, meta)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadTestReportSuccessMessage, report)
}

func (ctrl *LabController) GetTestReport(w http.ResponseWriter, r *http.Request) {
	resultID, err := idParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	report, err := ctrl.LabUsecase.GetTestReport(ctx, resultID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestReportSuccessMessage, report)
}
