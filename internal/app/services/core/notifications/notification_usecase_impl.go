package notifications

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/dto/responses"
	"emr-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// defaultListLimit caps the inbox page at the most recent entries.
const defaultListLimit = 50

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	NotificationPublisher  contracts.NotificationPublisher
	UserRepository         contracts.UserRepository
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	notificationPublisher contracts.NotificationPublisher,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		instance := &notificationUsecase{
			NotificationRepository: notificationRepository,
			NotificationPublisher:  notificationPublisher,
			UserRepository:         userRepository,
			Log:                    logger,
		}
		notificationUsecaseInstance = instance
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) CreateNotification(ctx context.Context, request *requests.CreateNotification, actor models.Actor) (*models.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.CreateNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecipientIDKey, request.Recipient.ID),
		zap.String(constvars.LoggingRecipientRoleKey, request.Recipient.Role),
	)

	// The recipient must hold the selected role right now, not at some point
	// in the past.
	recipient, err := uc.UserRepository.FindByIDAndRole(ctx, request.Recipient.ID, request.Recipient.Role)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, exceptions.ErrRecipientNotFound(nil)
	}

	notification, err := uc.buildNotification(request.Recipient.Role, recipient.ID, request.Type, request.Message, request.RelatedEntity, request.RelatedEntityID, actor)
	if err != nil {
		return nil, err
	}

	created, err := uc.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, created)
	return created, nil
}

func (uc *notificationUsecase) BroadcastToRole(ctx context.Context, request *requests.BroadcastNotification, actor models.Actor) (*responses.Broadcast, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.BroadcastToRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecipientRoleKey, request.Role),
	)

	recipients, err := uc.UserRepository.FindByRole(ctx, request.Role)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, exceptions.ErrNoUsersWithRole(nil)
	}

	notifications := make([]*models.Notification, 0, len(recipients))
	for i := range recipients {
		notification, err := uc.buildNotification(request.Role, recipients[i].ID, request.Type, request.Message, request.RelatedEntity, request.RelatedEntityID, actor)
		if err != nil {
			return nil, err
		}
		created, err := uc.NotificationRepository.CreateNotification(ctx, notification)
		if err != nil {
			// Partial fan-out is acceptable, the remaining recipients still
			// get theirs.
			uc.Log.Warn("notificationUsecase.BroadcastToRole error creating notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecipientIDKey, recipients[i].ID.Hex()),
				zap.Error(err),
			)
			continue
		}
		uc.publish(ctx, created)
		notifications = append(notifications, created)
	}

	uc.Log.Info("notificationUsecase.BroadcastToRole completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("recipients", len(notifications)),
	)
	return &responses.Broadcast{
		Recipients:    len(notifications),
		Notifications: notifications,
	}, nil
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context, actor models.Actor) ([]models.Notification, error) {
	return uc.NotificationRepository.FindByRecipient(ctx, actor.ID, defaultListLimit)
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, notificationID string, actor models.Actor) (*models.Notification, error) {
	notification, err := uc.NotificationRepository.MarkRead(ctx, notificationID, actor.ID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		// Either the notification does not exist or it belongs to someone
		// else. Both look the same to the caller.
		return nil, exceptions.ErrNotificationNotFound(nil)
	}
	return notification, nil
}

func (uc *notificationUsecase) buildNotification(role string, recipientID primitive.ObjectID, notificationType, message, relatedEntity, relatedEntityID string, actor models.Actor) (*models.Notification, error) {
	now := time.Now()
	notification := &models.Notification{
		RecipientID:   recipientID,
		RecipientRole: role,
		Type:          notificationType,
		Message:       message,
		RelatedEntity: relatedEntity,
		Status:        constvars.NotificationStatusUnread,
		TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if actor.ID != "" {
		senderID, err := primitive.ObjectIDFromHex(actor.ID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		notification.SenderID = &senderID
		notification.SenderRole = actor.Role
	}

	if relatedEntityID != "" {
		entityID, err := primitive.ObjectIDFromHex(relatedEntityID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		notification.RelatedEntityID = &entityID
	}
	return notification, nil
}

// publish pushes the delivery event, logging and swallowing failures. The
// stored notification is the source of truth, the queue is a hint.
func (uc *notificationUsecase) publish(ctx context.Context, notification *models.Notification) {
	if err := uc.NotificationPublisher.PublishNotification(ctx, notification); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("notificationUsecase.publish error publishing delivery event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notification.ID.Hex()),
			zap.Error(err),
		)
	}
}
