package routers

import (
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/billings"
	"emr-service/internal/app/services/core/payments"
	"emr-service/internal/app/services/core/serviceorders"

	"github.com/go-chi/chi/v5"
)

func attachServiceOrderRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	serviceOrderController *serviceorders.ServiceOrderController,
	billingController *billings.BillingController,
	paymentController *payments.PaymentController,
) {
	router.With(middlewares.Actor).Post("/", serviceOrderController.CreateServiceOrder)
	router.With(middlewares.Actor).Get("/{orderId}", serviceOrderController.GetServiceOrderByID)
	router.With(middlewares.Actor).Post("/{orderId}/cancel", serviceOrderController.CancelServiceOrder)
	router.With(middlewares.Actor).Post("/{orderId}/billing", billingController.GenerateBilling)
	router.With(middlewares.Actor).Get("/{orderId}/payment-status", billingController.GetPaymentStatus)
	router.With(middlewares.Actor).Post("/{orderId}/payments", paymentController.SettlePayment)
	router.With(middlewares.Actor).Get("/{orderId}/payments", paymentController.GetPaymentByServiceOrder)
}
