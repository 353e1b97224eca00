package routers

import (
	"emr-service/internal/app/config"
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/billings"
	"emr-service/internal/app/services/core/consultations"
	"emr-service/internal/app/services/core/notifications"
	"emr-service/internal/app/services/core/patients"
	"emr-service/internal/app/services/core/payments"
	"emr-service/internal/app/services/core/serviceorders"
	"emr-service/internal/app/services/core/vitalsigns"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	serviceOrderController *serviceorders.ServiceOrderController,
	billingController *billings.BillingController,
	paymentController *payments.PaymentController,
	notificationController *notifications.NotificationController,
	consultationController *consultations.ConsultationController,
	vitalSignsController *vitalsigns.VitalSignsController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, serviceOrderController, consultationController, vitalSignsController)
			})

			r.Route("/service-orders", func(r chi.Router) {
				attachServiceOrderRoutes(r, middlewares, serviceOrderController, billingController, paymentController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, paymentController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/consultations", func(r chi.Router) {
				attachConsultationRoutes(r, middlewares, consultationController)
			})

			r.Route("/vital-signs", func(r chi.Router) {
				attachVitalSignsRoutes(r, middlewares, vitalSignsController)
			})
		})
	})
}
