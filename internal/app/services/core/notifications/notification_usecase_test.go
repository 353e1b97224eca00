package notifications

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeNotificationRepo struct {
	created []*models.Notification
	read    *models.Notification
}

func (f *fakeNotificationRepo) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	notification.ID = primitive.NewObjectID()
	f.created = append(f.created, notification)
	return notification, nil
}

func (f *fakeNotificationRepo) FindByRecipient(ctx context.Context, recipientID string, limit int) ([]models.Notification, error) {
	result := make([]models.Notification, 0, len(f.created))
	for _, n := range f.created {
		if n.RecipientID.Hex() == recipientID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	return f.read, nil
}

type fakePublisher struct {
	published int
	err       error
}

func (f *fakePublisher) PublishNotification(ctx context.Context, notification *models.Notification) error {
	f.published++
	return f.err
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == userID {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDAndRole(ctx context.Context, userID, role string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == userID && f.users[i].Role == role {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	var result []models.User
	for _, u := range f.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

func newNotificationFixture(users []models.User) (*notificationUsecase, *fakeNotificationRepo, *fakePublisher) {
	repo := &fakeNotificationRepo{}
	publisher := &fakePublisher{}
	usecase := &notificationUsecase{
		NotificationRepository: repo,
		NotificationPublisher:  publisher,
		UserRepository:         &fakeUserRepo{users: users},
		Log:                    zap.NewNop(),
	}
	return usecase, repo, publisher
}

func TestCreateNotification(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleDoctor}

	t.Run("Recipient Must Hold Selected Role", func(t *testing.T) {
		nurse := models.User{ID: primitive.NewObjectID(), Role: constvars.RoleNurse, Active: true}
		usecase, repo, publisher := newNotificationFixture([]models.User{nurse})

		result, err := usecase.CreateNotification(context.Background(), &requests.CreateNotification{
			Recipient: requests.RecipientSelector{ID: nurse.ID.Hex(), Role: constvars.RoleNurse},
			Type:      "lab-result-ready",
			Message:   "Results for patient are ready",
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, nurse.ID, result.RecipientID)
		assert.Equal(t, constvars.NotificationStatusUnread, result.Status)
		assert.Len(t, repo.created, 1)
		assert.Equal(t, 1, publisher.published)
	})

	t.Run("Role Mismatch Rejected", func(t *testing.T) {
		nurse := models.User{ID: primitive.NewObjectID(), Role: constvars.RoleNurse, Active: true}
		usecase, repo, _ := newNotificationFixture([]models.User{nurse})

		_, err := usecase.CreateNotification(context.Background(), &requests.CreateNotification{
			Recipient: requests.RecipientSelector{ID: nurse.ID.Hex(), Role: constvars.RoleDoctor},
			Type:      "lab-result-ready",
			Message:   "Results for patient are ready",
		}, actor)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, repo.created)
	})

	t.Run("Publish Failure Does Not Fail Creation", func(t *testing.T) {
		nurse := models.User{ID: primitive.NewObjectID(), Role: constvars.RoleNurse, Active: true}
		usecase, repo, publisher := newNotificationFixture([]models.User{nurse})
		publisher.err = exceptions.ErrRabbitMQPublishMessage(assert.AnError, constvars.NotificationQueueName)

		result, err := usecase.CreateNotification(context.Background(), &requests.CreateNotification{
			Recipient: requests.RecipientSelector{ID: nurse.ID.Hex(), Role: constvars.RoleNurse},
			Type:      "lab-result-ready",
			Message:   "Results for patient are ready",
		}, actor)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, repo.created, 1)
	})
}

func TestBroadcastToRole(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}

	t.Run("One Notification Per Role Holder", func(t *testing.T) {
		users := []models.User{
			{ID: primitive.NewObjectID(), Role: constvars.RoleBillingStaff, Active: true},
			{ID: primitive.NewObjectID(), Role: constvars.RoleBillingStaff, Active: true},
			{ID: primitive.NewObjectID(), Role: constvars.RoleBillingStaff, Active: true},
		}
		usecase, repo, publisher := newNotificationFixture(users)

		result, err := usecase.BroadcastToRole(context.Background(), &requests.BroadcastNotification{
			Role:    constvars.RoleBillingStaff,
			Type:    "shift-change",
			Message: "Evening shift starts at 6pm",
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Recipients)
		assert.Len(t, repo.created, 3)
		assert.Equal(t, 3, publisher.published)
	})

	t.Run("No Role Holders Rejected", func(t *testing.T) {
		usecase, _, _ := newNotificationFixture(nil)

		_, err := usecase.BroadcastToRole(context.Background(), &requests.BroadcastNotification{
			Role:    constvars.RoleLabAssistant,
			Type:    "shift-change",
			Message: "Evening shift starts at 6pm",
		}, actor)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleNurse}

	t.Run("Missing Or Foreign Notification Looks Identical", func(t *testing.T) {
		usecase, _, _ := newNotificationFixture(nil)

		_, err := usecase.MarkNotificationRead(context.Background(), primitive.NewObjectID().Hex(), actor)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Owned Notification Marked Read", func(t *testing.T) {
		usecase, repo, _ := newNotificationFixture(nil)
		repo.read = &models.Notification{
			ID:     primitive.NewObjectID(),
			Status: constvars.NotificationStatusRead,
		}

		result, err := usecase.MarkNotificationRead(context.Background(), repo.read.ID.Hex(), actor)

		assert.NoError(t, err)
		assert.Equal(t, constvars.NotificationStatusRead, result.Status)
	})
}
