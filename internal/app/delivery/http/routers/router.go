package routers

import (
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Patient   *controllers.PatientController
	Ward      *controllers.WardController
	Admission *controllers.AdmissionController
	Lab       *controllers.LabController
	Audit     *controllers.AuditController
	Health    *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RecordMetrics)
	router.Use(middlewares.BodyLimit)

	router.Method("GET", "/metrics", metrics.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Get("/health", ctrls.Health.Check)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, ctrls.Auth)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, ctrls.Patient)
		})

		r.Route("/wards", func(r chi.Router) {
			attachWardRoutes(r, middlewares, ctrls.Ward)
		})

		r.Route("/admissions", func(r chi.Router) {
			attachAdmissionRoutes(r, middlewares, ctrls.Admission)
		})

		r.Route("/transfers", func(r chi.Router) {
			attachTransferRoutes(r, middlewares, ctrls.Admission)
		})

		r.Route("/lab", func(r chi.Router) {
			attachLabRoutes(r, middlewares, ctrls.Lab)
		})

		r.Route("/audit-logs", func(r chi.Router) {
			attachAuditRoutes(r, middlewares, ctrls.Audit)
		})
	})
}
