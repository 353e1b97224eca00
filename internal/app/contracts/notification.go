package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	FindByRecipient(ctx context.Context, recipientID string, limit int) ([]models.Notification, error)
	// MarkRead is conditional on the notification belonging to recipientID.
	MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error)
}

// NotificationPublisher pushes delivery events to the outbound channel.
// Delivery is best-effort and at-least-once; publish failures must never
// fail the operation that created the notification.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, notification *models.Notification) error
}

type NotificationUsecase interface {
	CreateNotification(ctx context.Context, request *requests.CreateNotification, actor models.Actor) (*models.Notification, error)
	BroadcastToRole(ctx context.Context, request *requests.BroadcastNotification, actor models.Actor) (*responses.Broadcast, error)
	ListNotifications(ctx context.Context, actor models.Actor) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string, actor models.Actor) (*models.Notification, error)
}
