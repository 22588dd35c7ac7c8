package auth

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	AuditLogger    contracts.AuditLogger
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	auditLogger contracts.AuditLogger,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		AuditLogger:    auditLogger,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.ToLower(request.Email)
	existingUser, err := uc.UserRepository.FindByEmailOrUsername(ctx, email, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if existingUser != nil {
		if existingUser.Email == email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Username:     request.Username,
		FullName:     request.FullName,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         request.Role,
		Department:   request.Department,
		IsActive:     true,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionCreate,
		ResourceType: models.AuditResourceUser,
		ResourceID:   userID,
		Changes:      map[string]any{"username": user.Username, "role": user.Role},
		PerformedBy:  models.Actor{UserID: userID, UserRole: user.Role},
	})

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.RegisterUser{
		UserID:   userID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user == nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "medium")
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !user.IsActive {
		utils.LogSecurityEvent(uc.Log, "login_disabled_account", requestID, "medium",
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrAccountDisabled(nil)
	}

	now := time.Now().UTC()
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: now.Add(ttl),
	}

	err = uc.SessionService.CreateSession(ctx, session, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, user.ID, user.Role, uc.InternalConfig.JWT.Secret, session.ExpiresAt)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.UserRepository.UpdateLastLogin(ctx, user.ID, now)
	if err != nil {
		uc.Log.Warn("authUsecase.Login error updating last login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	user.LastLoginAt = &now

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionLogin,
		ResourceType: models.AuditResourceUser,
		ResourceID:   user.ID,
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.LoginUser{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      toUserInfo(user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.AuditLogger.Record(ctx, models.AuditLog{
		Action:       models.AuditActionLogout,
		ResourceType: models.AuditResourceUser,
		ResourceID:   session.UserID,
		PerformedBy:  session.Actor(),
	})

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserInfo, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("authUsecase.GetProfile error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	profile := toUserInfo(user)
	uc.Log.Info("authUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &profile, nil
}

// ParseSessionToken validates the JWT and resolves it against the live session,
// so a logged out token stops working before it expires.
func (uc *authUsecase) ParseSessionToken(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.GetSession(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	if session.UserID != claims.UserID {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func toUserInfo(user *models.User) responses.UserInfo {
	return responses.UserInfo{
		UserID:     user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		LastLogin:  user.LastLoginAt,
	}
}
