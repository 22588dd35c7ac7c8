package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreatePatient(ctx context.Context, patient *models.Patient) (id string, err error)
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	FindByPhone(ctx context.Context, phone string) (*models.Patient, error)
	FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}

type SequenceRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}

type PatientUsecase interface {
	RegisterOPDPatient(ctx context.Context, session *models.Session, request *requests.RegisterOPDPatient) (*responses.RegisterPatient, error)
	RegisterAEPatient(ctx context.Context, session *models.Session, request *requests.RegisterAEPatient) (*responses.RegisterPatient, error)
	ListPatients(ctx context.Context, query *requests.PatientQuery) ([]models.Patient, int, error)
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, session *models.Session, id string, request *requests.UpdatePatient) (*models.Patient, error)
}
