package routers

import (
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/vitalsigns"

	"github.com/go-chi/chi/v5"
)

func attachVitalSignsRoutes(router chi.Router, middlewares *middlewares.Middlewares, vitalSignsController *vitalsigns.VitalSignsController) {
	router.With(middlewares.Actor).Post("/", vitalSignsController.CreateVitalSigns)
	router.With(middlewares.Actor).Get("/{vitalSignsId}", vitalSignsController.GetVitalSignsByID)
}
