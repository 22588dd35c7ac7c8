package patients

import (
	"context"
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

// severity label used on the registration counter for OPD patients
const noSeverityLabel = "none"

type patientUsecase struct {
	PatientRepository  contracts.PatientRepository
	SequenceRepository contracts.SequenceRepository
	AuditLogger        contracts.AuditLogger
	Metrics            *metrics.Collector
	Log                *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	sequenceRepository contracts.SequenceRepository,
	auditLogger contracts.AuditLogger,
	metricsCollector *metrics.Collector,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:  patientRepository,
		SequenceRepository: sequenceRepository,
		AuditLogger:        auditLogger,
		Metrics:            metricsCollector,
		Log:                logger,
	}
}

func (uc *patientUsecase) RegisterOPDPatient(ctx context.Context, session *models.Session, request *requests.RegisterOPDPatient) (*responses.RegisterPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.RegisterOPDPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := buildPatient(request.PersonalInfo, request.ContactInfo, request.EmergencyContact)
	if err != nil {
		return nil, err
	}
	patient.RegistrationType = models.RegistrationTypeOPD
	if request.MedicalHistory != nil {
		patient.MedicalHistory, err = toMedicalHistory(request.MedicalHistory)
		if err != nil {
			return nil, err
		}
	}

	return uc.register(ctx, session, patient)
}

func (uc *patientUsecase) RegisterAEPatient(ctx context.Context, session *models.Session, request *requests.RegisterAEPatient) (*responses.RegisterPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.RegisterAEPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.EmergencyDetails == nil {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientEmergencyDetailsRequired)
	}

	patient, err := buildPatient(request.PersonalInfo, request.ContactInfo, request.EmergencyContact)
	if err != nil {
		return nil, err
	}
	patient.RegistrationType = models.RegistrationTypeAE

	details := toEmergencyDetails(request.EmergencyDetails)
	details.SeverityScore = SeverityScore(details)
	details.SeverityLevel = SeverityLevelFor(details.SeverityScore)
	patient.EmergencyDetails = &details

	uc.Log.Info("patientUsecase.RegisterAEPatient severity assessed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSeverityScoreKey, details.SeverityScore),
		zap.String(constvars.LoggingSeverityLevelKey, string(details.SeverityLevel)),
	)

	return uc.register(ctx, session, patient)
}

func (uc *patientUsecase) register(ctx context.Context, session *models.Session, patient *models.Patient) (*responses.RegisterPatient, error) {
	requestID := utils.GetRequestID(ctx)

	existingPatient, err := uc.PatientRepository.FindByPhone(ctx, patient.ContactInfo.Phone)
	if err != nil {
		uc.Log.Error("patientUsecase.register error finding patient by phone",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingPatient != nil {
		return nil, exceptions.ErrPatientPhoneAlreadyExist(nil)
	}

	now := time.Now().UTC()
	sequence, err := uc.SequenceRepository.Next(ctx, utils.PatientCounterKey(now))
	if err != nil {
		uc.Log.Error("patientUsecase.register error generating patient id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patient.PatientID = utils.GeneratePatientID(now.Year(), sequence)
	patient.Status = models.PatientStatusActive
	patient.RegisteredBy = session.Actor()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	id, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.register error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = id

	severityLabel := noSeverityLabel
	changes := map[string]any{
		"patientId":        patient.PatientID,
		"registrationType": patient.RegistrationType,
	}
	response := &responses.RegisterPatient{
		ID:               id,
		PatientID:        patient.PatientID,
		RegistrationType: string(patient.RegistrationType),
		Name:             patient.PersonalInfo.FullName(),
		RegisteredAt:     now,
	}
	if patient.EmergencyDetails != nil {
		score := patient.EmergencyDetails.SeverityScore
		severityLabel = string(patient.EmergencyDetails.SeverityLevel)
		response.SeverityScore = &score
		response.SeverityLevel = severityLabel
		changes["severityScore"] = score
		changes["severityLevel"] = severityLabel
	}

	if uc.Metrics != nil {
		uc.Metrics.PatientRegistrationsTotal.WithLabelValues(string(patient.RegistrationType), severityLabel).Inc()
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionRegister,
		ResourceType: models.AuditResourcePatient,
		ResourceID:   id,
		PatientID:    id,
		Changes:      changes,
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("patientUsecase.register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.PatientID),
	)
	return response, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, query *requests.PatientQuery) ([]models.Patient, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, total, err := uc.PatientRepository.FindAll(ctx, models.PatientFilter{
		RegistrationType: query.RegistrationType,
		Status:           query.Status,
		Search:           query.Search,
		Page:             query.Page,
		PageSize:         query.PageSize,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients error finding patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(patients)),
	)
	return patients, total, nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, id),
	)

	return uc.findPatient(ctx, id)
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, id string, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, id),
	)

	patient, err := uc.findPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if request.ContactInfo != nil {
		if request.ContactInfo.Phone != patient.ContactInfo.Phone {
			holder, err := uc.PatientRepository.FindByPhone(ctx, request.ContactInfo.Phone)
			if err != nil {
				uc.Log.Error("patientUsecase.UpdatePatient error finding patient by phone",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return nil, err
			}
			if holder != nil && holder.ID != patient.ID {
				return nil, exceptions.ErrPatientPhoneAlreadyExist(nil)
			}
		}
		patient.ContactInfo = toContactInfo(*request.ContactInfo)
		changes["contactInfo"] = patient.ContactInfo
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = toEmergencyContact(*request.EmergencyContact)
		changes["emergencyContact"] = patient.EmergencyContact
	}
	if request.MedicalHistory != nil {
		patient.MedicalHistory, err = toMedicalHistory(request.MedicalHistory)
		if err != nil {
			return nil, err
		}
		changes["medicalHistory"] = patient.MedicalHistory
	}
	if request.Status != nil {
		patient.Status = models.PatientStatus(*request.Status)
		changes["status"] = patient.Status
	}
	patient.SetUpdatedAt()

	err = uc.PatientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionUpdate,
		ResourceType: models.AuditResourcePatient,
		ResourceID:   patient.ID,
		PatientID:    patient.ID,
		Changes:      changes,
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.PatientID),
	)
	return patient, nil
}

func (uc *patientUsecase) findPatient(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func buildPatient(personal requests.PersonalInfo, contact requests.ContactInfo, emergencyContact requests.EmergencyContact) (*models.Patient, error) {
	dateOfBirth, err := utils.ParseDate(personal.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientInvalidDateOfBirth)
	}
	if dateOfBirth.After(time.Now().UTC()) {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientInvalidDateOfBirth)
	}

	return &models.Patient{
		PersonalInfo: models.PersonalInfo{
			FirstName:   personal.FirstName,
			LastName:    personal.LastName,
			DateOfBirth: dateOfBirth,
			Gender:      personal.Gender,
			BloodGroup:  personal.BloodGroup,
		},
		ContactInfo:      toContactInfo(contact),
		EmergencyContact: toEmergencyContact(emergencyContact),
	}, nil
}

func toContactInfo(contact requests.ContactInfo) models.ContactInfo {
	return models.ContactInfo{
		Email: contact.Email,
		Phone: contact.Phone,
		Address: models.Address{
			Street:  contact.Address.Street,
			City:    contact.Address.City,
			State:   contact.Address.State,
			Pincode: contact.Address.Pincode,
		},
	}
}

func toEmergencyContact(contact requests.EmergencyContact) models.EmergencyContact {
	return models.EmergencyContact{
		Name:         contact.Name,
		Relationship: contact.Relationship,
		Phone:        contact.Phone,
	}
}

func toMedicalHistory(history *requests.MedicalHistory) (*models.MedicalHistory, error) {
	result := &models.MedicalHistory{
		Allergies:          nonNil(history.Allergies),
		ChronicConditions:  nonNil(history.ChronicConditions),
		CurrentMedications: nonNil(history.CurrentMedications),
		PastSurgeries:      make([]models.PastSurgery, 0, len(history.PastSurgeries)),
	}
	for _, surgery := range history.PastSurgeries {
		date, err := utils.ParseOptionalDate(surgery.Date)
		if err != nil {
			return nil, exceptions.ErrInvalidInput(constvars.ErrClientInvalidSurgeryDate)
		}
		result.PastSurgeries = append(result.PastSurgeries, models.PastSurgery{
			SurgeryType: surgery.SurgeryType,
			Date:        date,
			Hospital:    surgery.Hospital,
		})
	}
	return result, nil
}

func toEmergencyDetails(details *requests.EmergencyDetails) models.EmergencyDetails {
	result := models.EmergencyDetails{
		InjuryType:     details.InjuryType,
		ArrivalMode:    models.ArrivalMode(details.ArrivalMode),
		ChiefComplaint: details.ChiefComplaint,
		VitalSigns: models.VitalSigns{
			BloodPressure: details.VitalSigns.BloodPressure,
		},
	}
	if details.VitalSigns.PulseRate != nil {
		result.VitalSigns.PulseRate = *details.VitalSigns.PulseRate
	}
	if details.VitalSigns.Temperature != nil {
		result.VitalSigns.Temperature = *details.VitalSigns.Temperature
	}
	if details.VitalSigns.OxygenSaturation != nil {
		result.VitalSigns.OxygenSaturation = *details.VitalSigns.OxygenSaturation
	}
	return result
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
