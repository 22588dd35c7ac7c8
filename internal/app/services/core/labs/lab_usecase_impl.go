package labs

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"io"
	"time"

	"go.uber.org/zap"
)

const (
	registrationCreatedReason = "Test registered"
	resultRecordedReason      = "Result recorded"
	resultReleasedReason      = "Result released"

	defaultReportURLExpiry = 15 * time.Minute
)

var allowedReportContentTypes = map[string]bool{
	constvars.MIMEApplicationPDF: true,
	constvars.MIMEImagePNG:       true,
	constvars.MIMEImageJPEG:      true,
}

type labUsecase struct {
	LabTestRepository          contracts.LabTestRepository
	TestRegistrationRepository contracts.TestRegistrationRepository
	TestResultRepository       contracts.TestResultRepository
	PatientRepository          contracts.PatientRepository
	Storage                    contracts.Storage
	AuditLogger                contracts.AuditLogger
	Metrics                    *metrics.Collector
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

func NewLabUsecase(
	labTestRepository contracts.LabTestRepository,
	testRegistrationRepository contracts.TestRegistrationRepository,
	testResultRepository contracts.TestResultRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	auditLogger contracts.AuditLogger,
	metricsCollector *metrics.Collector,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LabUsecase {
	return &labUsecase{
		LabTestRepository:          labTestRepository,
		TestRegistrationRepository: testRegistrationRepository,
		TestResultRepository:       testResultRepository,
		PatientRepository:          patientRepository,
		Storage:                    storage,
		AuditLogger:                auditLogger,
		Metrics:                    metricsCollector,
		InternalConfig:             internalConfig,
		Log:                        logger,
	}
}

func (uc *labUsecase) CreateLabTest(ctx context.Context, session *models.Session, request *requests.CreateLabTest) (*models.LabTest, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.CreateLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	labTest := &models.LabTest{
		TestName:       request.TestName,
		TestType:       models.LabTestType(request.TestType),
		Description:    request.Description,
		Unit:           request.Unit,
		ReferenceRange: request.ReferenceRange,
		IsActive:       true,
		CreatedBy:      session.Actor(),
	}
	if request.Price != nil {
		labTest.Price = *request.Price
	}
	labTest.SetCreatedAtUpdatedAt()

	labTestID, err := uc.LabTestRepository.CreateLabTest(ctx, labTest)
	if err != nil {
		uc.Log.Error("labUsecase.CreateLabTest error creating lab test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	labTest.ID = labTestID

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestCreate,
		ResourceType: models.AuditResourceLabTest,
		ResourceID:   labTestID,
		Changes:      map[string]any{"testName": labTest.TestName, "testType": labTest.TestType, "price": labTest.Price},
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("labUsecase.CreateLabTest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestIDKey, labTestID),
	)
	return labTest, nil
}

func (uc *labUsecase) ListLabTests(ctx context.Context, query *requests.LabTestQuery) ([]models.LabTest, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.ListLabTests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	labTests, total, err := uc.LabTestRepository.FindAll(ctx, models.LabTestFilter{
		TestType:        query.TestType,
		Search:          query.Search,
		IncludeInactive: query.IncludeInactive,
		Page:            query.Page,
		PageSize:        query.PageSize,
	})
	if err != nil {
		uc.Log.Error("labUsecase.ListLabTests error finding lab tests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return labTests, total, nil
}

func (uc *labUsecase) GetLabTest(ctx context.Context, labTestID string) (*models.LabTest, error) {
	return uc.findLabTest(ctx, labTestID)
}

func (uc *labUsecase) UpdateLabTest(ctx context.Context, session *models.Session, labTestID string, request *requests.UpdateLabTest) (*models.LabTest, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.UpdateLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestIDKey, labTestID),
	)

	labTest, err := uc.findLabTest(ctx, labTestID)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if request.TestName != nil {
		labTest.TestName = *request.TestName
		changes["testName"] = labTest.TestName
	}
	if request.TestType != nil {
		labTest.TestType = models.LabTestType(*request.TestType)
		changes["testType"] = labTest.TestType
	}
	if request.Description != nil {
		labTest.Description = *request.Description
		changes["description"] = labTest.Description
	}
	if request.Unit != nil {
		labTest.Unit = *request.Unit
		changes["unit"] = labTest.Unit
	}
	if request.ReferenceRange != nil {
		labTest.ReferenceRange = *request.ReferenceRange
		changes["referenceRange"] = labTest.ReferenceRange
	}
	if request.Price != nil {
		labTest.Price = *request.Price
		changes["price"] = labTest.Price
	}
	if request.IsActive != nil {
		labTest.IsActive = *request.IsActive
		changes["isActive"] = labTest.IsActive
	}
	labTest.SetUpdatedAt()

	err = uc.LabTestRepository.UpdateLabTest(ctx, labTest)
	if err != nil {
		uc.Log.Error("labUsecase.UpdateLabTest error updating lab test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestUpdate,
		ResourceType: models.AuditResourceLabTest,
		ResourceID:   labTest.ID,
		Changes:      changes,
		PerformedBy:  session.Actor(),
	})
	return labTest, nil
}

func (uc *labUsecase) DeleteLabTest(ctx context.Context, session *models.Session, labTestID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.DeleteLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestIDKey, labTestID),
	)

	if _, err := uc.findLabTest(ctx, labTestID); err != nil {
		return err
	}

	deactivated, err := uc.LabTestRepository.Deactivate(ctx, labTestID)
	if err != nil {
		uc.Log.Error("labUsecase.DeleteLabTest error deactivating lab test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deactivated {
		return nil
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionDelete,
		ResourceType: models.AuditResourceLabTest,
		ResourceID:   labTestID,
		Changes:      map[string]any{"isActive": false},
		PerformedBy:  session.Actor(),
	})
	return nil
}

func (uc *labUsecase) RegisterTest(ctx context.Context, session *models.Session, request *requests.RegisterTest) (*models.TestRegistration, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.RegisterTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingLabTestIDKey, request.LabTestID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	labTest, err := uc.findLabTest(ctx, request.LabTestID)
	if err != nil {
		return nil, err
	}
	if !labTest.IsActive {
		return nil, exceptions.ErrLabTestInactive(nil)
	}

	scheduledDate, err := utils.ParseOptionalDate(request.ScheduledDate)
	if err != nil {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientScheduledDateInPast)
	}
	now := time.Now().UTC()
	if scheduledDate != nil && scheduledDate.Before(utils.StartOfDay(now)) {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientScheduledDateInPast)
	}

	priority := models.TestPriorityNormal
	if request.Priority != "" {
		priority = models.TestPriority(request.Priority)
	}

	registration := &models.TestRegistration{
		PatientID:        request.PatientID,
		LabTestID:        request.LabTestID,
		DoctorID:         session.UserID,
		Priority:         priority,
		ScheduledDate:    scheduledDate,
		RegistrationDate: now,
		Status:           models.RegistrationStatusRegistered,
		Notes:            request.Notes,
		StatusHistory: []models.StatusHistoryEntry{{
			Status:    string(models.RegistrationStatusRegistered),
			ChangedAt: now,
			Reason:    registrationCreatedReason,
			ChangedBy: session.Actor(),
		}},
	}
	registration.CreatedAt = now
	registration.UpdatedAt = now

	registrationID, err := uc.TestRegistrationRepository.CreateRegistration(ctx, registration)
	if err != nil {
		uc.Log.Error("labUsecase.RegisterTest error creating registration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	registration.ID = registrationID

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestRegister,
		ResourceType: models.AuditResourceTestRegistration,
		ResourceID:   registrationID,
		PatientID:    registration.PatientID,
		Changes:      map[string]any{"labTestId": registration.LabTestID, "priority": registration.Priority},
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("labUsecase.RegisterTest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationIDKey, registrationID),
	)
	return registration, nil
}

func (uc *labUsecase) ListTestRegistrations(ctx context.Context, query *requests.TestRegistrationQuery) ([]models.TestRegistration, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.ListTestRegistrations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.TestRegistrationRepository.FindAll(ctx, models.TestRegistrationFilter{
		PatientID: query.PatientID,
		Status:    query.Status,
		Priority:  query.Priority,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
}

func (uc *labUsecase) GetTestRegistration(ctx context.Context, registrationID string) (*models.TestRegistration, error) {
	return uc.findRegistration(ctx, registrationID)
}

func (uc *labUsecase) UpdateTestRegistrationStatus(ctx context.Context, session *models.Session, registrationID string, request *requests.UpdateTestRegistrationStatus) (*models.TestRegistration, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.UpdateTestRegistrationStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationIDKey, registrationID),
		zap.String("status", request.Status),
	)

	registration, err := uc.findRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	next := models.RegistrationStatus(request.Status)
	if !registration.Status.CanTransitionTo(next) {
		return nil, exceptions.ErrInvalidStatusTransition(string(registration.Status), string(next))
	}

	entry := models.StatusHistoryEntry{
		Status:    string(next),
		ChangedAt: time.Now().UTC(),
		Notes:     request.Notes,
		ChangedBy: session.Actor(),
	}
	updated, err := uc.TestRegistrationRepository.UpdateStatus(ctx, registrationID, models.RegistrationStatusesAllowedInto(next), entry)
	if err != nil {
		uc.Log.Error("labUsecase.UpdateTestRegistrationStatus error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrInvalidStatusTransition(string(registration.Status), string(next))
	}

	previous := registration.Status
	registration.Status = next
	registration.StatusHistory = append(registration.StatusHistory, entry)
	registration.UpdatedAt = entry.ChangedAt

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionUpdate,
		ResourceType: models.AuditResourceTestRegistration,
		ResourceID:   registrationID,
		PatientID:    registration.PatientID,
		Changes:      map[string]any{"from": previous, "to": next},
		PerformedBy:  session.Actor(),
	})
	return registration, nil
}

func (uc *labUsecase) AddTestResult(ctx context.Context, session *models.Session, request *requests.AddTestResult) (*models.TestResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.AddTestResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationIDKey, request.RegistrationID),
	)

	registration, err := uc.findRegistration(ctx, request.RegistrationID)
	if err != nil {
		return nil, err
	}
	if !registration.Status.AcceptsResult() {
		return nil, exceptions.ErrInvalidStatusTransition(string(registration.Status), string(models.RegistrationStatusCompleted))
	}

	result := &models.TestResult{
		RegistrationID: registration.ID,
		PatientID:      registration.PatientID,
		LabTestID:      registration.LabTestID,
		Result:         request.Result,
		Unit:           request.Unit,
		ReferenceRange: request.ReferenceRange,
		Interpretation: request.Interpretation,
		Notes:          request.Notes,
		Status:         models.TestResultStatusDraft,
		PerformedBy:    session.Actor(),
	}
	if result.Unit == "" || result.ReferenceRange == "" {
		labTest, err := uc.LabTestRepository.FindByID(ctx, registration.LabTestID)
		if err != nil {
			return nil, err
		}
		if labTest != nil {
			if result.Unit == "" {
				result.Unit = labTest.Unit
			}
			if result.ReferenceRange == "" {
				result.ReferenceRange = labTest.ReferenceRange
			}
		}
	}
	result.SetCreatedAtUpdatedAt()

	resultID, err := uc.TestResultRepository.CreateResult(ctx, result)
	if err != nil {
		uc.Log.Error("labUsecase.AddTestResult error creating result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	result.ID = resultID

	uc.moveRegistration(ctx, session, registration.ID, models.RegistrationStatusCompleted, resultRecordedReason)
	uc.countResult(models.TestResultStatusDraft)

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestResult,
		ResourceType: models.AuditResourceTestResult,
		ResourceID:   resultID,
		PatientID:    result.PatientID,
		Changes:      map[string]any{"registrationId": result.RegistrationID, "status": result.Status},
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("labUsecase.AddTestResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestResultIDKey, resultID),
	)
	return result, nil
}

func (uc *labUsecase) GetTestResult(ctx context.Context, resultID string) (*models.TestResult, error) {
	return uc.findResult(ctx, resultID)
}

func (uc *labUsecase) ListPatientTestResults(ctx context.Context, patientID string, pagination *requests.Pagination) ([]models.TestResult, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.ListPatientTestResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return uc.TestResultRepository.FindByPatientID(ctx, patientID, pagination.Page, pagination.PageSize)
}

func (uc *labUsecase) VerifyTestResult(ctx context.Context, session *models.Session, resultID string) (*models.TestResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.VerifyTestResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestResultIDKey, resultID),
	)

	result, err := uc.findResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.Status != models.TestResultStatusDraft {
		return nil, exceptions.ErrInvalidStatusTransition(string(result.Status), string(models.TestResultStatusVerified))
	}

	now := time.Now().UTC()
	verifier := session.Actor()
	verified, err := uc.TestResultRepository.MarkVerified(ctx, resultID, verifier, now)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, exceptions.ErrInvalidStatusTransition(string(result.Status), string(models.TestResultStatusVerified))
	}

	result.Status = models.TestResultStatusVerified
	result.VerifiedBy = &verifier
	result.VerifiedAt = &now
	result.UpdatedAt = now
	uc.countResult(models.TestResultStatusVerified)

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestResult,
		ResourceType: models.AuditResourceTestResult,
		ResourceID:   resultID,
		PatientID:    result.PatientID,
		Changes:      map[string]any{"status": result.Status},
		PerformedBy:  verifier,
	})
	return result, nil
}

func (uc *labUsecase) ReleaseTestResult(ctx context.Context, session *models.Session, resultID string) (*models.TestResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.ReleaseTestResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestResultIDKey, resultID),
	)

	result, err := uc.findResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.Status != models.TestResultStatusVerified {
		return nil, exceptions.ErrInvalidStatusTransition(string(result.Status), string(models.TestResultStatusReleased))
	}

	now := time.Now().UTC()
	released, err := uc.TestResultRepository.MarkReleased(ctx, resultID, now)
	if err != nil {
		return nil, err
	}
	if !released {
		return nil, exceptions.ErrInvalidStatusTransition(string(result.Status), string(models.TestResultStatusReleased))
	}

	result.Status = models.TestResultStatusReleased
	result.ReleasedAt = &now
	result.UpdatedAt = now

	uc.moveRegistration(ctx, session, result.RegistrationID, models.RegistrationStatusDelivered, resultReleasedReason)
	uc.countResult(models.TestResultStatusReleased)

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestResult,
		ResourceType: models.AuditResourceTestResult,
		ResourceID:   resultID,
		PatientID:    result.PatientID,
		Changes:      map[string]any{"status": result.Status},
		PerformedBy:  session.Actor(),
	})
	return result, nil
}

func (uc *labUsecase) UploadTestReport(ctx context.Context, session *models.Session, resultID string, file io.Reader, meta *requests.UploadTestReport) (*responses.TestReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labUsecase.UploadTestReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestResultIDKey, resultID),
		zap.Int64("size", meta.Size),
	)

	if !allowedReportContentTypes[meta.ContentType] {
		return nil, exceptions.ErrInvalidReportFile(nil)
	}
	if maxSize := uc.InternalConfig.App.LabReportMaxUploadSizeInMB << 20; maxSize > 0 && meta.Size > maxSize {
		return nil, exceptions.ErrReportFileTooLarge(nil)
	}

	result, err := uc.findResult(ctx, resultID)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateLabReportObjectName(resultID, meta.FileName)
	err = uc.Storage.UploadFile(ctx, file, meta.Size, meta.ContentType, bucketName, objectName)
	if err != nil {
		uc.Log.Error("labUsecase.UploadTestReport error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.TestResultRepository.SetReportObjectName(ctx, resultID, objectName)
	if err != nil {
		return nil, err
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTestResult,
		ResourceType: models.AuditResourceTestResult,
		ResourceID:   resultID,
		PatientID:    result.PatientID,
		Changes:      map[string]any{"reportObjectName": objectName},
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("labUsecase.UploadTestReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return uc.presignReport(ctx, resultID, objectName)
}

func (uc *labUsecase) GetTestReport(ctx context.Context, resultID string) (*responses.TestReport, error) {
	result, err := uc.findResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.ReportObjectName == "" {
		return nil, exceptions.ErrTestReportNotFound(nil)
	}
	return uc.presignReport(ctx, resultID, result.ReportObjectName)
}

func (uc *labUsecase) presignReport(ctx context.Context, resultID, objectName string) (*responses.TestReport, error) {
	expiry := defaultReportURLExpiry
	if minutes := uc.InternalConfig.App.LabReportURLExpiryInMinutes; minutes > 0 {
		expiry = time.Duration(minutes) * time.Minute
	}

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}
	return &responses.TestReport{
		TestResultID: resultID,
		ObjectName:   objectName,
		URL:          url,
		ExpiresAt:    time.Now().UTC().Add(expiry),
	}, nil
}

// moveRegistration follows a result transition on its registration. A miss
// means the registration was moved elsewhere and is only logged.
func (uc *labUsecase) moveRegistration(ctx context.Context, session *models.Session, registrationID string, next models.RegistrationStatus, reason string) {
	requestID := utils.GetRequestID(ctx)

	moved, err := uc.TestRegistrationRepository.UpdateStatus(ctx, registrationID, models.RegistrationStatusesAllowedInto(next), models.StatusHistoryEntry{
		Status:    string(next),
		ChangedAt: time.Now().UTC(),
		Reason:    reason,
		ChangedBy: session.Actor(),
	})
	if err != nil || !moved {
		uc.Log.Warn("labUsecase.moveRegistration registration not moved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRegistrationIDKey, registrationID),
			zap.String("status", string(next)),
			zap.Error(err),
		)
	}
}

func (uc *labUsecase) countResult(status models.TestResultStatus) {
	if uc.Metrics != nil {
		uc.Metrics.LabResultsTotal.WithLabelValues(string(status)).Inc()
	}
}

func (uc *labUsecase) findLabTest(ctx context.Context, labTestID string) (*models.LabTest, error) {
	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrLabTestNotFound(nil)
	}
	return labTest, nil
}

func (uc *labUsecase) findRegistration(ctx context.Context, registrationID string) (*models.TestRegistration, error) {
	registration, err := uc.TestRegistrationRepository.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, exceptions.ErrTestRegistrationNotFound(nil)
	}
	return registration, nil
}

func (uc *labUsecase) findResult(ctx context.Context, resultID string) (*models.TestResult, error) {
	result, err := uc.TestResultRepository.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, exceptions.ErrTestResultNotFound(nil)
	}
	return result, nil
}
