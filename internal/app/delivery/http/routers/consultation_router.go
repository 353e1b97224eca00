package routers

import (
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/consultations"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *consultations.ConsultationController) {
	router.With(middlewares.Actor).Post("/", consultationController.CreateConsultation)
}
