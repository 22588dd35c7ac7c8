package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, admissionController *controllers.AdmissionController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", admissionController.ListAdmissions)
	router.Get("/status/{admissionId}", admissionController.GetAdmissionStatus)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor))
		r.Post("/admit", admissionController.AdmitPatient)
		r.Put("/discharge", admissionController.DischargePatient)
	})
}

func attachTransferRoutes(router chi.Router, middlewares *middlewares.Middlewares, admissionController *controllers.AdmissionController) {
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor),
	).Put("/transfer", admissionController.TransferPatient)
}
