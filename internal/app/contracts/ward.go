package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type WardRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateWard(ctx context.Context, ward *models.Ward) (wardID string, err error)
	FindByID(ctx context.Context, wardID string) (*models.Ward, error)
	FindByWardNumber(ctx context.Context, wardNumber string) (*models.Ward, error)
	FindAll(ctx context.Context, filter models.WardFilter) ([]models.Ward, int, error)
	// UpdateWard only matches while occupiedBeds <= ward.TotalBeds.
	UpdateWard(ctx context.Context, ward *models.Ward) (bool, error)
	// UpdateCapacity only matches while occupiedBeds <= totalBeds.
	UpdateCapacity(ctx context.Context, wardID string, totalBeds int) (bool, error)
	// IncrementOccupancy only matches while the result stays in [0, totalBeds].
	IncrementOccupancy(ctx context.Context, wardID string, delta int) (bool, error)
	// DeleteEmptyWard only matches while occupiedBeds == 0.
	DeleteEmptyWard(ctx context.Context, wardID string) (bool, error)
}

// WardOccupancyService moves bed counts for the admission workflow.
type WardOccupancyService interface {
	IncrementOccupancy(ctx context.Context, wardID string, delta int) error
}

type WardUsecase interface {
	WardOccupancyService
	CreateWard(ctx context.Context, session *models.Session, request *requests.CreateWard) (*responses.Ward, error)
	ListWards(ctx context.Context, query *requests.WardQuery) ([]responses.Ward, int, error)
	GetWard(ctx context.Context, wardID string) (*responses.Ward, error)
	GetWardBeds(ctx context.Context, wardID string) (*responses.WardBeds, error)
	UpdateWard(ctx context.Context, session *models.Session, wardID string, request *requests.UpdateWard) (*responses.Ward, error)
	UpdateCapacity(ctx context.Context, wardID string, totalBeds int) error
	DeleteWard(ctx context.Context, session *models.Session, wardID string) error
	ExportCensus(ctx context.Context) (*responses.WardCensusFile, error)
}
