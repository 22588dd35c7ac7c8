package utils

import (
	"errors"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse_CustomError(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	rec := httptest.NewRecorder()

	BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrNoBedsAvailable(nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body responses.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "No beds available in this ward", body.Message)
	assert.NotEmpty(t, body.DevMessage)
	require.NotNil(t, body.Location)
}

func TestBuildErrorResponse_HidesDevFieldsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	rec := httptest.NewRecorder()

	BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrWardNotFound(nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body responses.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.DevMessage)
	assert.Nil(t, body.Location)
}

func TestBuildErrorResponse_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()

	BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "there is something wrong with the application")
}

func TestBuildPaginationResponse(t *testing.T) {
	pagination := BuildPaginationResponse(25, 2, 10, "/api/wards")
	assert.Equal(t, "/api/wards?page=3&page_size=10", pagination.NextURL)
	assert.Equal(t, "/api/wards?page=1&page_size=10", pagination.PrevURL)

	last := BuildPaginationResponse(25, 3, 10, "/api/wards")
	assert.Empty(t, last.NextURL)
}
