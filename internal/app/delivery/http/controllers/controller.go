package controllers

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const usecaseTimeout = 10 * time.Second

// withUsecaseTimeout keeps the request scoped values (request id, session)
// and bounds the usecase call.
func withUsecaseTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), usecaseTimeout)
}

func sessionFromRequest(r *http.Request) (*models.Session, error) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func idParam(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if err := utils.ValidateUrlParamID(id); err != nil {
		return "", exceptions.ErrURLParamIDValidation(err, name)
	}
	return id, nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		err = exceptions.ErrServerProcess(err)
	}
	utils.BuildErrorResponse(log, w, err)
}
