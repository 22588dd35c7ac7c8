package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AdmissionRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateAdmission(ctx context.Context, admission *models.Admission) (admissionID string, err error)
	FindByID(ctx context.Context, admissionID string) (*models.Admission, error)
	FindActiveByPatientID(ctx context.Context, patientID string) (*models.Admission, error)
	FindActiveByBed(ctx context.Context, wardID string, bedNumber int) (*models.Admission, error)
	FindActiveByWardID(ctx context.Context, wardID string) ([]models.Admission, error)
	FindAll(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error)
	// Transfer and Discharge only match admissions whose status may move
	// to the target status; false means another writer got there first.
	Transfer(ctx context.Context, update models.TransferUpdate) (bool, error)
	Discharge(ctx context.Context, update models.DischargeUpdate) (bool, error)
}

type AdmissionUsecase interface {
	AdmitPatient(ctx context.Context, session *models.Session, request *requests.AdmitPatient) (*responses.AdmitPatient, error)
	TransferPatient(ctx context.Context, session *models.Session, request *requests.TransferPatient) (*responses.TransferPatient, error)
	DischargePatient(ctx context.Context, session *models.Session, request *requests.DischargePatient) (*responses.DischargePatient, error)
	GetAdmissionStatus(ctx context.Context, admissionID string) (*responses.AdmissionStatus, error)
	ListAdmissions(ctx context.Context, query *requests.AdmissionQuery) ([]models.Admission, int, error)
}
