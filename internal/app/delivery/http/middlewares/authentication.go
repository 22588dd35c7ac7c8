package middlewares

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to a live session and stores it
// under CONTEXT_SESSION_DATA_KEY.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.HeaderBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.HeaderBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ParseSessionToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles must run after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
				return
			}

			if !session.HasRole(roles...) {
				requestID := utils.GetRequestID(r.Context())
				utils.LogSecurityEvent(m.Log, "role_denied", requestID, "medium",
					zap.String(constvars.LoggingUserIDKey, session.UserID),
					zap.String(constvars.LoggingUserRoleKey, session.Role),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
