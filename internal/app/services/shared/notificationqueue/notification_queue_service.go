package notificationqueue

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DeliveryEvent is the payload pushed to the delivery queue for each stored
// notification. Consumers forward it to connected clients.
type DeliveryEvent struct {
	Event          string    `json:"event"`
	NotificationID string    `json:"notification_id"`
	RecipientID    string    `json:"recipient_id"`
	RecipientRole  string    `json:"recipient_role"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	EmittedAt      time.Time `json:"emitted_at"`
}

// Service publishes delivery events to a durable RabbitMQ queue with
// publisher confirms.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

var (
	serviceInstance *Service
	onceService     sync.Once
)

// NewService declares the durable delivery queue and enables confirms.
func NewService(conn *amqp.Connection, log *zap.Logger) (contracts.NotificationPublisher, error) {
	var err error
	onceService.Do(func() {
		var ch *amqp.Channel
		ch, err = conn.Channel()
		if err != nil {
			return
		}

		_, err = ch.QueueDeclare(
			constvars.NotificationQueueName, // name
			true,                            // durable
			false,                           // autoDelete
			false,                           // exclusive
			false,                           // noWait
			nil,                             // args
		)
		if err != nil {
			return
		}

		if err = ch.Confirm(false); err != nil {
			return
		}

		serviceInstance = &Service{
			ch:       ch,
			log:      log,
			confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		}
	})
	if err != nil {
		return nil, err
	}
	return serviceInstance, nil
}

// PublishNotification publishes a persistent delivery event and waits for the
// broker confirm.
func (s *Service) PublishNotification(ctx context.Context, notification *models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("NotificationQueue.PublishNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notification.ID.Hex()),
		zap.String(constvars.LoggingQueueNameKey, constvars.NotificationQueueName),
	)

	event := DeliveryEvent{
		Event:          constvars.NotificationEventName,
		NotificationID: notification.ID.Hex(),
		RecipientID:    notification.RecipientID.Hex(),
		RecipientRole:  notification.RecipientRole,
		Type:           notification.Type,
		Message:        notification.Message,
		EmittedAt:      time.Now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", constvars.NotificationQueueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.NotificationQueueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), constvars.NotificationQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), constvars.NotificationQueueName)
	}
	return nil
}
