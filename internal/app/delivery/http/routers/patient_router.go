package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleNurse))
		r.Post("/register-opd", patientController.RegisterOPDPatient)
		r.Post("/register-ae", patientController.RegisterAEPatient)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleNurse, constvars.RoleAdmin))
		r.Get("/", patientController.ListPatients)
		r.Get("/{id}", patientController.GetPatient)
		r.Put("/{id}", patientController.UpdatePatient)
	})
}
