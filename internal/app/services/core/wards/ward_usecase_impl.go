package wards

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type wardUsecase struct {
	WardRepository      contracts.WardRepository
	AdmissionRepository contracts.AdmissionRepository
	AuditLogger         contracts.AuditLogger
	Log                 *zap.Logger
}

func NewWardUsecase(
	wardRepository contracts.WardRepository,
	admissionRepository contracts.AdmissionRepository,
	auditLogger contracts.AuditLogger,
	logger *zap.Logger,
) contracts.WardUsecase {
	return &wardUsecase{
		WardRepository:      wardRepository,
		AdmissionRepository: admissionRepository,
		AuditLogger:         auditLogger,
		Log:                 logger,
	}
}

func (uc *wardUsecase) CreateWard(ctx context.Context, session *models.Session, request *requests.CreateWard) (*responses.Ward, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.CreateWard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardNumberKey, request.WardNumber),
	)

	if request.TotalBeds < 1 {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientTotalBedsMustBePositive)
	}
	if request.Floor == nil || *request.Floor < 0 {
		return nil, exceptions.ErrInvalidInput(constvars.ErrClientFloorMustNotBeNegative)
	}

	existingWard, err := uc.WardRepository.FindByWardNumber(ctx, request.WardNumber)
	if err != nil {
		uc.Log.Error("wardUsecase.CreateWard error finding ward by number",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingWard != nil {
		return nil, exceptions.ErrWardNumberAlreadyExist(nil)
	}

	ward := &models.Ward{
		WardNumber:     request.WardNumber,
		WardType:       models.WardType(request.WardType),
		Floor:          *request.Floor,
		TotalBeds:      request.TotalBeds,
		OccupiedBeds:   0,
		Specialization: models.WardSpecializationGeneral,
		Status:         models.WardStatusActive,
	}
	if request.Specialization != "" {
		ward.Specialization = models.WardSpecialization(request.Specialization)
	}
	if request.Status != "" {
		ward.Status = models.WardStatus(request.Status)
	}
	ward.SetCreatedAtUpdatedAt()

	wardID, err := uc.WardRepository.CreateWard(ctx, ward)
	if err != nil {
		uc.Log.Error("wardUsecase.CreateWard error creating ward",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	ward.ID = wardID

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionCreate,
		ResourceType: models.AuditResourceWard,
		ResourceID:   wardID,
		Changes:      map[string]any{"wardNumber": ward.WardNumber, "totalBeds": ward.TotalBeds},
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("wardUsecase.CreateWard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
	)
	response := toWardResponse(ward)
	return &response, nil
}

func (uc *wardUsecase) ListWards(ctx context.Context, query *requests.WardQuery) ([]responses.Ward, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.ListWards called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	wards, total, err := uc.WardRepository.FindAll(ctx, models.WardFilter{
		WardType:       query.WardType,
		Status:         query.Status,
		Specialization: query.Specialization,
		OnlyAvailable:  query.OnlyAvailable,
		Page:           query.Page,
		PageSize:       query.PageSize,
	})
	if err != nil {
		uc.Log.Error("wardUsecase.ListWards error finding wards",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	result := make([]responses.Ward, 0, len(wards))
	for i := range wards {
		result = append(result, toWardResponse(&wards[i]))
	}

	uc.Log.Info("wardUsecase.ListWards succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(result)),
	)
	return result, total, nil
}

func (uc *wardUsecase) GetWard(ctx context.Context, wardID string) (*responses.Ward, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.GetWard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
	)

	ward, err := uc.findWard(ctx, wardID)
	if err != nil {
		return nil, err
	}

	response := toWardResponse(ward)
	return &response, nil
}

// GetWardBeds maps every bed in the ward to the active admission holding it.
func (uc *wardUsecase) GetWardBeds(ctx context.Context, wardID string) (*responses.WardBeds, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.GetWardBeds called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
	)

	ward, err := uc.findWard(ctx, wardID)
	if err != nil {
		return nil, err
	}

	admissions, err := uc.AdmissionRepository.FindActiveByWardID(ctx, wardID)
	if err != nil {
		uc.Log.Error("wardUsecase.GetWardBeds error finding active admissions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	holders := make(map[int]models.Admission, len(admissions))
	for _, admission := range admissions {
		holders[admission.BedNumber] = admission
	}

	beds := make([]responses.Bed, 0, ward.TotalBeds)
	for bedNumber := 1; bedNumber <= ward.TotalBeds; bedNumber++ {
		bed := responses.Bed{BedNumber: bedNumber}
		if admission, ok := holders[bedNumber]; ok {
			bed.Occupied = true
			bed.AdmissionID = admission.ID
			bed.PatientID = admission.PatientID
			bed.Status = string(admission.Status)
		}
		beds = append(beds, bed)
	}

	uc.Log.Info("wardUsecase.GetWardBeds succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.WardBeds{
		WardID:        ward.ID,
		WardNumber:    ward.WardNumber,
		TotalBeds:     ward.TotalBeds,
		OccupiedBeds:  ward.OccupiedBeds,
		AvailableBeds: ward.AvailableBeds(),
		Beds:          beds,
	}, nil
}

func (uc *wardUsecase) UpdateWard(ctx context.Context, session *models.Session, wardID string, request *requests.UpdateWard) (*responses.Ward, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.UpdateWard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
	)

	ward, err := uc.findWard(ctx, wardID)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if request.WardType != nil {
		ward.WardType = models.WardType(*request.WardType)
		changes["wardType"] = *request.WardType
	}
	if request.Floor != nil {
		ward.Floor = *request.Floor
		changes["floor"] = *request.Floor
	}
	if request.Specialization != nil {
		ward.Specialization = models.WardSpecialization(*request.Specialization)
		changes["specialization"] = *request.Specialization
	}
	if request.Status != nil {
		ward.Status = models.WardStatus(*request.Status)
		changes["status"] = *request.Status
	}

	if request.TotalBeds != nil && *request.TotalBeds != ward.TotalBeds {
		if *request.TotalBeds < 1 {
			return nil, exceptions.ErrInvalidInput(constvars.ErrClientTotalBedsMustBePositive)
		}
		ward.TotalBeds = *request.TotalBeds
		changes["totalBeds"] = *request.TotalBeds
	}

	ward.SetUpdatedAt()
	updated, err := uc.WardRepository.UpdateWard(ctx, ward)
	if err != nil {
		uc.Log.Error("wardUsecase.UpdateWard error updating ward",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		if _, err := uc.findWard(ctx, wardID); err != nil {
			return nil, err
		}
		return nil, exceptions.ErrWardCapacityBelowOccupied(nil)
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionUpdate,
		ResourceType: models.AuditResourceWard,
		ResourceID:   wardID,
		Changes:      changes,
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("wardUsecase.UpdateWard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	current, err := uc.findWard(ctx, wardID)
	if err != nil {
		return nil, err
	}
	response := toWardResponse(current)
	return &response, nil
}

// UpdateCapacity rejects shrinking below the beds currently in use. The store
// filter makes the check and the write a single step.
func (uc *wardUsecase) UpdateCapacity(ctx context.Context, wardID string, totalBeds int) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.UpdateCapacity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
		zap.Int("total_beds", totalBeds),
	)

	if totalBeds < 1 {
		return exceptions.ErrInvalidInput(constvars.ErrClientTotalBedsMustBePositive)
	}

	updated, err := uc.WardRepository.UpdateCapacity(ctx, wardID, totalBeds)
	if err != nil {
		uc.Log.Error("wardUsecase.UpdateCapacity error updating capacity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !updated {
		if _, err := uc.findWard(ctx, wardID); err != nil {
			return err
		}
		return exceptions.ErrWardCapacityBelowOccupied(nil)
	}

	uc.Log.Info("wardUsecase.UpdateCapacity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *wardUsecase) DeleteWard(ctx context.Context, session *models.Session, wardID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.DeleteWard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
	)

	ward, err := uc.findWard(ctx, wardID)
	if err != nil {
		return err
	}

	deleted, err := uc.WardRepository.DeleteEmptyWard(ctx, wardID)
	if err != nil {
		uc.Log.Error("wardUsecase.DeleteWard error deleting ward",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrWardHasPatients(nil)
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionDelete,
		ResourceType: models.AuditResourceWard,
		ResourceID:   wardID,
		Changes:      map[string]any{"wardNumber": ward.WardNumber},
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("wardUsecase.DeleteWard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// IncrementOccupancy fails rather than leave occupiedBeds outside [0, totalBeds].
func (uc *wardUsecase) IncrementOccupancy(ctx context.Context, wardID string, delta int) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("wardUsecase.IncrementOccupancy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWardIDKey, wardID),
		zap.Int("delta", delta),
	)

	if delta == 0 {
		return nil
	}

	updated, err := uc.WardRepository.IncrementOccupancy(ctx, wardID, delta)
	if err != nil {
		uc.Log.Error("wardUsecase.IncrementOccupancy error updating occupancy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !updated {
		if _, err := uc.findWard(ctx, wardID); err != nil {
			return err
		}
		if delta > 0 {
			return exceptions.ErrNoBedsAvailable(nil)
		}
		return exceptions.ErrOccupancyOutOfRange(nil)
	}
	return nil
}

func (uc *wardUsecase) ExportCensus(ctx context.Context) (*responses.WardCensusFile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("wardUsecase.ExportCensus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	wards, _, err := uc.WardRepository.FindAll(ctx, models.WardFilter{})
	if err != nil {
		uc.Log.Error("wardUsecase.ExportCensus error finding wards",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	generatedAt := time.Now().UTC()
	content, err := BuildCensusWorkbook(wards, generatedAt)
	if err != nil {
		uc.Log.Error("wardUsecase.ExportCensus error building workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrExcelBuildWorkbook(err)
	}

	uc.Log.Info("wardUsecase.ExportCensus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("wards", len(wards)),
	)
	return &responses.WardCensusFile{
		FileName: utils.WardCensusFileName(generatedAt),
		Content:  content,
	}, nil
}

func (uc *wardUsecase) findWard(ctx context.Context, wardID string) (*models.Ward, error) {
	ward, err := uc.WardRepository.FindByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, exceptions.ErrWardNotFound(nil)
	}
	return ward, nil
}

func toWardResponse(ward *models.Ward) responses.Ward {
	return responses.Ward{
		ID:             ward.ID,
		WardNumber:     ward.WardNumber,
		WardType:       string(ward.WardType),
		Floor:          ward.Floor,
		TotalBeds:      ward.TotalBeds,
		OccupiedBeds:   ward.OccupiedBeds,
		AvailableBeds:  ward.AvailableBeds(),
		Specialization: string(ward.Specialization),
		Status:         string(ward.Status),
		CreatedAt:      ward.CreatedAt,
		UpdatedAt:      ward.UpdatedAt,
	}
}
