package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWardRoutes(router chi.Router, middlewares *middlewares.Middlewares, wardController *controllers.WardController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", wardController.ListWards)
	router.Get("/{id}", wardController.GetWard)
	router.Get("/{id}/beds", wardController.GetWardBeds)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleAdmin))
		r.Post("/", wardController.CreateWard)
		r.Get("/census/export", wardController.ExportCensus)
		r.Put("/{id}", wardController.UpdateWard)
		r.Delete("/{id}", wardController.DeleteWard)
	})
}
