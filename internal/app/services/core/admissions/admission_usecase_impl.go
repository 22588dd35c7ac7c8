package admissions

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
	"time"

	"go.uber.org/zap"
)

const (
	initialAdmissionReason = "Initial admission"
	defaultTransferReason  = "Patient transfer"
	defaultTransferNotes   = "Transfer to new ward"
	dischargeReason        = "Patient discharged"

	wardLockAttempts        = 20
	wardLockRetryInterval   = 50 * time.Millisecond
	defaultWardLockDuration = 10 * time.Second
)

type admissionUsecase struct {
	AdmissionRepository contracts.AdmissionRepository
	WardRepository      contracts.WardRepository
	OccupancyService    contracts.WardOccupancyService
	PatientRepository   contracts.PatientRepository
	LockerService       contracts.LockerService
	AuditLogger         contracts.AuditLogger
	Metrics             *metrics.Collector
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewAdmissionUsecase(
	admissionRepository contracts.AdmissionRepository,
	wardRepository contracts.WardRepository,
	occupancyService contracts.WardOccupancyService,
	patientRepository contracts.PatientRepository,
	lockerService contracts.LockerService,
	auditLogger contracts.AuditLogger,
	metricsCollector *metrics.Collector,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AdmissionUsecase {
	return &admissionUsecase{
		AdmissionRepository: admissionRepository,
		WardRepository:      wardRepository,
		OccupancyService:    occupancyService,
		PatientRepository:   patientRepository,
		LockerService:       lockerService,
		AuditLogger:         auditLogger,
		Metrics:             metricsCollector,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *admissionUsecase) AdmitPatient(ctx context.Context, session *models.Session, request *requests.AdmitPatient) (*responses.AdmitPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("admissionUsecase.AdmitPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingWardIDKey, request.WardID),
		zap.Int(constvars.LoggingBedNumberKey, request.BedNumber),
	)

	expectedDischargeDate, err := utils.ParseOptionalDate(request.ExpectedDischargeDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		uc.Log.Error("admissionUsecase.AdmitPatient error finding patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if _, err := uc.findWard(ctx, request.WardID); err != nil {
		return nil, err
	}

	existingAdmission, err := uc.AdmissionRepository.FindActiveByPatientID(ctx, request.PatientID)
	if err != nil {
		uc.Log.Error("admissionUsecase.AdmitPatient error finding active admission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingAdmission != nil {
		return nil, activeAdmissionConflict(existingAdmission)
	}

	unlock := uc.lockWard(ctx, request.WardID)
	defer unlock()

	// Read again under the lock so the checks below see the latest counts.
	ward, err := uc.findWard(ctx, request.WardID)
	if err != nil {
		return nil, err
	}
	if !ward.IsAcceptingAdmissions() {
		return nil, exceptions.ErrWardNotActive(nil)
	}
	if !ward.HasAvailableBed() {
		return nil, exceptions.ErrNoBedsAvailable(nil)
	}
	if request.BedNumber > ward.TotalBeds {
		return nil, exceptions.ErrBedOutOfRange(nil)
	}

	bedHolder, err := uc.AdmissionRepository.FindActiveByBed(ctx, ward.ID, request.BedNumber)
	if err != nil {
		uc.Log.Error("admissionUsecase.AdmitPatient error finding bed holder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if bedHolder != nil {
		return nil, exceptions.ErrBedOccupied(nil)
	}

	err = uc.OccupancyService.IncrementOccupancy(ctx, ward.ID, 1)
	if err != nil {
		uc.Log.Error("admissionUsecase.AdmitPatient error reserving bed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now().UTC()
	actor := session.Actor()
	admission := &models.Admission{
		PatientID:             request.PatientID,
		WardID:                ward.ID,
		BedNumber:             request.BedNumber,
		AdmissionDate:         now,
		ExpectedDischargeDate: expectedDischargeDate,
		AdmittingDoctor:       session.UserID,
		AdmissionType:         models.AdmissionType(request.AdmissionType),
		Diagnosis:             request.Diagnosis,
		Notes:                 request.Notes,
		Status:                models.AdmissionStatusAdmitted,
		Active:                true,
		StatusHistory: []models.StatusHistoryEntry{{
			Status:    string(models.AdmissionStatusAdmitted),
			ChangedAt: now,
			Reason:    initialAdmissionReason,
			ChangedBy: actor,
		}},
		TransferHistory: []models.TransferHistoryEntry{},
	}
	admission.SetCreatedAtUpdatedAt()

	admissionID, err := uc.AdmissionRepository.CreateAdmission(ctx, admission)
	if err != nil {
		uc.Log.Error("admissionUsecase.AdmitPatient error creating admission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.releaseBed(ctx, ward.ID)
		return nil, err
	}

	uc.Metrics.AdmissionsTotal.WithLabelValues(string(admission.AdmissionType)).Inc()
	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionAdmit,
		ResourceType: models.AuditResourceAdmission,
		ResourceID:   admissionID,
		PatientID:    admission.PatientID,
		Changes: map[string]any{
			"status":     admission.Status,
			"wardNumber": ward.WardNumber,
			"bedNumber":  admission.BedNumber,
		},
		PerformedBy: actor,
	})

	utils.LogBusinessEvent(uc.Log, "patient_admitted", requestID,
		zap.String(constvars.LoggingAdmissionIDKey, admissionID),
		zap.String(constvars.LoggingAdmissionStatusKey, string(admission.Status)),
	)
	return &responses.AdmitPatient{
		AdmissionID:   admissionID,
		WardNumber:    ward.WardNumber,
		BedNumber:     admission.BedNumber,
		AdmissionDate: admission.AdmissionDate,
		Status:        string(admission.Status),
	}, nil
}

func (uc *admissionUsecase) TransferPatient(ctx context.Context, session *models.Session, request *requests.TransferPatient) (*responses.TransferPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("admissionUsecase.TransferPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.AdmissionID),
		zap.String(constvars.LoggingWardIDKey, request.NewWardID),
		zap.Int(constvars.LoggingBedNumberKey, request.NewBedNumber),
	)

	admission, err := uc.findActiveAdmission(ctx, request.AdmissionID)
	if err != nil {
		return nil, err
	}
	if !admission.Status.CanTransitionTo(models.AdmissionStatusTransferred) {
		return nil, exceptions.ErrInvalidStatusTransition(string(admission.Status), string(models.AdmissionStatusTransferred))
	}

	currentWard, err := uc.findWard(ctx, admission.WardID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.findWard(ctx, request.NewWardID); err != nil {
		return nil, err
	}

	sameWard := currentWard.ID == request.NewWardID
	if sameWard && admission.BedNumber == request.NewBedNumber {
		return nil, exceptions.ErrTransferSameBed(nil)
	}

	unlock := uc.lockWard(ctx, request.NewWardID)
	defer unlock()

	newWard, err := uc.findWard(ctx, request.NewWardID)
	if err != nil {
		return nil, err
	}
	if !newWard.IsAcceptingAdmissions() {
		return nil, exceptions.ErrWardNotActive(nil)
	}
	if request.NewBedNumber > newWard.TotalBeds {
		return nil, exceptions.ErrBedOutOfRange(nil)
	}

	bedHolder, err := uc.AdmissionRepository.FindActiveByBed(ctx, newWard.ID, request.NewBedNumber)
	if err != nil {
		uc.Log.Error("admissionUsecase.TransferPatient error finding bed holder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if bedHolder != nil && bedHolder.ID != admission.ID {
		return nil, exceptions.ErrBedOccupied(nil)
	}

	if !sameWard {
		if !newWard.HasAvailableBed() {
			return nil, exceptions.ErrNoBedsAvailable(nil)
		}
		err := uc.OccupancyService.IncrementOccupancy(ctx, newWard.ID, 1)
		if err != nil {
			uc.Log.Error("admissionUsecase.TransferPatient error reserving bed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	reason := request.Reason
	if reason == "" {
		reason = defaultTransferReason
	}
	notes := request.Notes
	if notes == "" {
		notes = defaultTransferNotes
	}

	now := time.Now().UTC()
	actor := session.Actor()
	update := models.TransferUpdate{
		AdmissionID:   admission.ID,
		FromWardID:    admission.WardID,
		FromBedNumber: admission.BedNumber,
		NewWardID:     newWard.ID,
		NewBedNumber:  request.NewBedNumber,
		History: models.StatusHistoryEntry{
			Status:    string(models.AdmissionStatusTransferred),
			ChangedAt: now,
			Reason:    reason,
			Notes:     notes,
			ChangedBy: actor,
		},
		Transfer: models.TransferHistoryEntry{
			FromWard:     currentWard.WardNumber,
			ToWard:       newWard.WardNumber,
			FromBed:      admission.BedNumber,
			ToBed:        request.NewBedNumber,
			TransferDate: now,
			Reason:       reason,
			Notes:        notes,
		},
	}

	moved, err := uc.AdmissionRepository.Transfer(ctx, update)
	if err != nil || !moved {
		if !sameWard {
			uc.releaseBed(ctx, newWard.ID)
		}
		if err != nil {
			uc.Log.Error("admissionUsecase.TransferPatient error moving admission",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		return nil, uc.staleAdmissionError(ctx, admission.ID)
	}

	if !sameWard {
		uc.releaseBed(ctx, currentWard.ID)
	}

	uc.Metrics.TransfersTotal.Inc()
	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionTransfer,
		ResourceType: models.AuditResourceAdmission,
		ResourceID:   admission.ID,
		PatientID:    admission.PatientID,
		Changes: map[string]any{
			"fromWard": currentWard.WardNumber,
			"toWard":   newWard.WardNumber,
			"fromBed":  admission.BedNumber,
			"toBed":    request.NewBedNumber,
		},
		PerformedBy: actor,
	})

	utils.LogBusinessEvent(uc.Log, "patient_transferred", requestID,
		zap.String(constvars.LoggingAdmissionIDKey, admission.ID),
	)
	return &responses.TransferPatient{
		AdmissionID:   admission.ID,
		NewWardNumber: newWard.WardNumber,
		NewBedNumber:  request.NewBedNumber,
		TransferDate:  now,
		PreviousWard:  currentWard.WardNumber,
		Status:        string(models.AdmissionStatusTransferred),
	}, nil
}

func (uc *admissionUsecase) DischargePatient(ctx context.Context, session *models.Session, request *requests.DischargePatient) (*responses.DischargePatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("admissionUsecase.DischargePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.AdmissionID),
	)

	admission, err := uc.findActiveAdmission(ctx, request.AdmissionID)
	if err != nil {
		return nil, err
	}

	ward, err := uc.findWard(ctx, admission.WardID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if now.Before(admission.AdmissionDate) {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientDischargeBeforeAdmission)
	}

	actor := session.Actor()
	discharged, err := uc.AdmissionRepository.Discharge(ctx, models.DischargeUpdate{
		AdmissionID:      admission.ID,
		WardID:           admission.WardID,
		BedNumber:        admission.BedNumber,
		DischargeDate:    now,
		DischargeNotes:   request.DischargeNotes,
		DischargeSummary: request.DischargeSummary,
		History: models.StatusHistoryEntry{
			Status:    string(models.AdmissionStatusDischarged),
			ChangedAt: now,
			Reason:    dischargeReason,
			Notes:     request.DischargeNotes,
			ChangedBy: actor,
		},
	})
	if err != nil {
		uc.Log.Error("admissionUsecase.DischargePatient error discharging admission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !discharged {
		return nil, uc.staleAdmissionError(ctx, admission.ID)
	}

	uc.releaseBed(ctx, ward.ID)

	uc.Metrics.DischargesTotal.Inc()
	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionDischarge,
		ResourceType: models.AuditResourceAdmission,
		ResourceID:   admission.ID,
		PatientID:    admission.PatientID,
		Changes: map[string]any{
			"status":        models.AdmissionStatusDischarged,
			"wardNumber":    ward.WardNumber,
			"bedNumber":     admission.BedNumber,
			"dischargeDate": now,
		},
		PerformedBy: actor,
	})

	utils.LogBusinessEvent(uc.Log, "patient_discharged", requestID,
		zap.String(constvars.LoggingAdmissionIDKey, admission.ID),
		zap.String(constvars.LoggingAdmissionStatusKey, string(models.AdmissionStatusDischarged)),
	)
	return &responses.DischargePatient{
		AdmissionID:   admission.ID,
		DischargeDate: now,
		WardNumber:    ward.WardNumber,
		Status:        string(models.AdmissionStatusDischarged),
		Notes:         request.DischargeNotes,
	}, nil
}

func (uc *admissionUsecase) GetAdmissionStatus(ctx context.Context, admissionID string) (*responses.AdmissionStatus, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("admissionUsecase.GetAdmissionStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, admissionID),
	)

	admission, err := uc.AdmissionRepository.FindByID(ctx, admissionID)
	if err != nil {
		uc.Log.Error("admissionUsecase.GetAdmissionStatus error finding admission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if admission == nil {
		return nil, exceptions.ErrAdmissionNotFound(nil)
	}

	response := &responses.AdmissionStatus{
		AdmissionID:           admission.ID,
		BedNumber:             admission.BedNumber,
		CurrentStatus:         string(admission.Status),
		AdmissionDate:         admission.AdmissionDate,
		ExpectedDischargeDate: admission.ExpectedDischargeDate,
		ActualDischargeDate:   admission.ActualDischargeDate,
		AdmittingDoctor:       admission.AdmittingDoctor,
		StatusHistory:         make([]responses.AdmissionStatusHistory, 0, len(admission.StatusHistory)),
		TransferHistory:       admission.TransferHistory,
	}
	if response.TransferHistory == nil {
		response.TransferHistory = []models.TransferHistoryEntry{}
	}

	patient, err := uc.PatientRepository.FindByID(ctx, admission.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		response.PatientInfo = responses.AdmissionPatientInfo{
			Name:      patient.PersonalInfo.FullName(),
			PatientID: patient.PatientID,
		}
	}

	ward, err := uc.WardRepository.FindByID(ctx, admission.WardID)
	if err != nil {
		return nil, err
	}
	if ward != nil {
		response.WardInfo = responses.AdmissionWardInfo{
			WardNumber: ward.WardNumber,
			WardType:   string(ward.WardType),
		}
	}

	for _, entry := range admission.StatusHistory {
		response.StatusHistory = append(response.StatusHistory, responses.AdmissionStatusHistory{
			Status:    entry.Status,
			ChangedAt: entry.ChangedAt,
			Reason:    entry.Reason,
			Notes:     entry.Notes,
			ChangedBy: entry.ChangedBy.UserRole,
		})
	}

	uc.Log.Info("admissionUsecase.GetAdmissionStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (uc *admissionUsecase) ListAdmissions(ctx context.Context, query *requests.AdmissionQuery) ([]models.Admission, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("admissionUsecase.ListAdmissions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	admissions, total, err := uc.AdmissionRepository.FindAll(ctx, models.AdmissionFilter{
		PatientID: query.PatientID,
		WardID:    query.WardID,
		Status:    query.Status,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		uc.Log.Error("admissionUsecase.ListAdmissions error finding admissions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("admissionUsecase.ListAdmissions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(admissions)),
	)
	return admissions, total, nil
}

func (uc *admissionUsecase) findWard(ctx context.Context, wardID string) (*models.Ward, error) {
	ward, err := uc.WardRepository.FindByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, exceptions.ErrWardNotFound(nil)
	}
	return ward, nil
}

func (uc *admissionUsecase) findActiveAdmission(ctx context.Context, admissionID string) (*models.Admission, error) {
	admission, err := uc.AdmissionRepository.FindByID(ctx, admissionID)
	if err != nil {
		return nil, err
	}
	if admission == nil || !admission.Status.IsActive() {
		return nil, exceptions.ErrActiveAdmissionNotFound(nil)
	}
	return admission, nil
}

// staleAdmissionError explains a guarded write that matched nothing: the
// admission was closed meanwhile, or another request moved it first.
func (uc *admissionUsecase) staleAdmissionError(ctx context.Context, admissionID string) error {
	current, err := uc.AdmissionRepository.FindByID(ctx, admissionID)
	if err != nil {
		return err
	}
	if current == nil || !current.Active {
		return exceptions.ErrActiveAdmissionNotFound(nil)
	}
	return exceptions.ErrAdmissionChanged(nil)
}

// releaseBed gives back one bed. The store never lets the count drop below
// zero, so a failure here only means the ward was already empty.
func (uc *admissionUsecase) releaseBed(ctx context.Context, wardID string) {
	err := uc.OccupancyService.IncrementOccupancy(context.WithoutCancel(ctx), wardID, -1)
	if err != nil {
		uc.Log.Warn("admissionUsecase.releaseBed error decrementing occupancy",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingWardIDKey, wardID),
			zap.Error(err),
		)
	}
}

// lockWard serialises admissions into one ward. The store guards stay
// authoritative, so failing to get the lock only costs a warning.
func (uc *admissionUsecase) lockWard(ctx context.Context, wardID string) (unlock func()) {
	requestID := utils.GetRequestID(ctx)
	noop := func() {}

	key := utils.WardLockKey(wardID)
	expiration := defaultWardLockDuration
	if uc.InternalConfig != nil && uc.InternalConfig.App.WardLockExpirationInSeconds > 0 {
		expiration = time.Duration(uc.InternalConfig.App.WardLockExpirationInSeconds) * time.Second
	}

	for attempt := 0; attempt < wardLockAttempts; attempt++ {
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, expiration)
		if err != nil {
			uc.Log.Warn("admissionUsecase.lockWard proceeding without lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingWardIDKey, wardID),
				zap.Error(err),
			)
			return noop
		}
		if acquired {
			return func() {
				if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
					uc.Log.Warn("admissionUsecase.lockWard error releasing lock",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingWardIDKey, wardID),
						zap.Error(err),
					)
				}
			}
		}

		select {
		case <-ctx.Done():
			return noop
		case <-time.After(wardLockRetryInterval):
		}
	}

	uc.Log.Warn("admissionUsecase.lockWard lock busy, proceeding without lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
	)
	return noop
}

func activeAdmissionConflict(existing *models.Admission) error {
	return exceptions.ErrPatientAlreadyAdmitted(nil).WithDetails(map[string]any{
		"existingAdmissionId": existing.ID,
		"status":              existing.Status,
	})
}
