package routers

import (
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.With(middlewares.Actor).Post("/", notificationController.CreateNotification)
	router.With(middlewares.Actor).Post("/broadcast", notificationController.BroadcastToRole)
	router.With(middlewares.Actor).Get("/", notificationController.ListNotifications)
	router.With(middlewares.Actor).Put("/{notificationId}/read", notificationController.MarkNotificationRead)
}
