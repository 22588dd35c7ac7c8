package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabRoutes(router chi.Router, middlewares *middlewares.Middlewares, labController *controllers.LabController) {
	router.Use(middlewares.Authenticate)

	labStaff := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleLabTechnician)

	router.Route("/tests", func(r chi.Router) {
		r.Get("/", labController.ListLabTests)
		r.Get("/{id}", labController.GetLabTest)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleLabTechnician)).Post("/", labController.CreateLabTest)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleLabTechnician)).Put("/{id}", labController.UpdateLabTest)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", labController.DeleteLabTest)
	})

	router.Route("/test-registrations", func(r chi.Router) {
		r.Use(labStaff)
		r.Post("/", labController.RegisterTest)
		r.Get("/", labController.ListTestRegistrations)
		r.Get("/{id}", labController.GetTestRegistration)
		r.Put("/{id}/status", labController.UpdateTestRegistrationStatus)
	})

	router.Route("/test-results", func(r chi.Router) {
		r.Use(labStaff)
		r.Post("/", labController.AddTestResult)
		r.Get("/patient/{patientId}", labController.ListPatientTestResults)
		r.Get("/{id}", labController.GetTestResult)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)).Put("/{id}/verify", labController.VerifyTestResult)
		r.Put("/{id}/release", labController.ReleaseTestResult)
		r.Post("/{id}/report", labController.UploadTestReport)
		r.Get("/{id}/report", labController.GetTestReport)
	})
}
