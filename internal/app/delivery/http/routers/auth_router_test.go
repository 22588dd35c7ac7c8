package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserInfo, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserInfo), args.Error(1)
}

func (m *MockAuthUsecase) ParseSessionToken(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

// newTestMiddlewares wires a token per role: "<role>-token" authenticates as that role.
func newTestMiddlewares(authUsecase *MockAuthUsecase, loginBurst int) *middlewares.Middlewares {
	logger := zap.NewNop()
	for _, role := range constvars.AllRoles {
		authUsecase.On("ParseSessionToken", mock.Anything, role+"-token").
			Return(&models.Session{SessionID: "session-" + role, UserID: "user-" + role, Role: role}, nil).Maybe()
	}
	authUsecase.On("ParseSessionToken", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrInvalidSession(nil)).Maybe()

	return &middlewares.Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		LoginLimiter:   middlewares.NewRateLimiter(logger, 1, loginBurst),
		InternalConfig: &config.InternalConfig{},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	body, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestAuthRouter_Login(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	middlewareInstance := newTestMiddlewares(mockAuthUsecase, 2)
	authController := controllers.NewAuthController(zap.NewNop(), mockAuthUsecase)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)

	mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).Return(&responses.LoginUser{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		User:      responses.UserInfo{UserID: "user-1", Email: "doctor@hospital.local", Role: constvars.RoleDoctor},
	}, nil)

	t.Run("Login with valid credentials", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", jsonBody(t, requests.Login{Email: " Doctor@Hospital.local ", Password: "Secret123"}))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.1:1234"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "signed.jwt.token")
		mockAuthUsecase.AssertCalled(t, "Login", mock.Anything, mock.MatchedBy(func(request *requests.Login) bool {
			return request.Email == "doctor@hospital.local"
		}))
	})

	t.Run("Login without password fails validation", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", jsonBody(t, requests.Login{Email: "doctor@hospital.local"}))
		req.RemoteAddr = "192.0.2.2:1234"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "password is required")
	})

	t.Run("Login is rate limited per client", func(t *testing.T) {
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("POST", "/login", jsonBody(t, requests.Login{Email: "doctor@hospital.local", Password: "Secret123"}))
			req.RemoteAddr = "192.0.2.3:1234"
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})
}

func TestAuthRouter_LogoutAndMe(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	middlewareInstance := newTestMiddlewares(mockAuthUsecase, 5)
	authController := controllers.NewAuthController(zap.NewNop(), mockAuthUsecase)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)

	t.Run("Logout without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("Logout with a live session", func(t *testing.T) {
		mockAuthUsecase.On("Logout", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.SessionID == "session-nurse"
		})).Return(nil).Once()

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer nurse-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Me with an unknown token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer logged-out-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Me returns the profile", func(t *testing.T) {
		mockAuthUsecase.On("GetProfile", mock.Anything, mock.Anything).
			Return(&responses.UserInfo{UserID: "user-admin", Username: "admin", Role: constvars.RoleAdmin}, nil).Once()

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer admin-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"admin"`)
	})
}
