package routers

import (
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/consultations"
	"emr-service/internal/app/services/core/patients"
	"emr-service/internal/app/services/core/serviceorders"
	"emr-service/internal/app/services/core/vitalsigns"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	serviceOrderController *serviceorders.ServiceOrderController,
	consultationController *consultations.ConsultationController,
	vitalSignsController *vitalsigns.VitalSignsController,
) {
	router.With(middlewares.Actor).Post("/", patientController.CreatePatient)
	router.With(middlewares.Actor).Get("/", patientController.ListPatients)
	router.With(middlewares.Actor).Get("/{patientId}", patientController.GetPatientByID)
	router.With(middlewares.Actor).Get("/{patientId}/service-orders", serviceOrderController.ListServiceOrdersByPatient)
	router.With(middlewares.Actor).Get("/{patientId}/consultations", consultationController.ListConsultationsByPatient)
	router.With(middlewares.Actor).Get("/{patientId}/vital-signs", vitalSignsController.ListVitalSignsByPatient)
}
