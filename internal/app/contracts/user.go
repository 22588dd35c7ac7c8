package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"time"
)

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
