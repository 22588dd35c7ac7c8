package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, middlewares *middlewares.Middlewares, auditController *controllers.AuditController) {
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleAdmin),
	).Get("/", auditController.ListAuditLogs)
}
