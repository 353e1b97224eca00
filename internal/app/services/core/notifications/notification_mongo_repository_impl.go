package notifications

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)
	return notification, nil
}

func (r *NotificationMongoRepository) FindByRecipient(ctx context.Context, recipientID string, limit int) ([]models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))
	cursor, err := r.Collection.Find(ctx, bson.M{"recipientId": objectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (r *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	notificationObjectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	recipientObjectID, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	filter := bson.M{"_id": notificationObjectID, "recipientId": recipientObjectID}
	update := bson.M{"$set": bson.M{
		"status":    constvars.NotificationStatusRead,
		"readAt":    now,
		"updatedAt": now,
	}}

	var notification models.Notification
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &notification, nil
}
