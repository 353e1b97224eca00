package routers

import (
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.With(middlewares.Actor).Get("/{paymentId}", paymentController.GetPaymentByID)
}
