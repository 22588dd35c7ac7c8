package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.Login) (*responses.LoginUser, error)
	Logout(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.UserInfo, error)
	ParseSessionToken(ctx context.Context, token string) (*models.Session, error)
}
