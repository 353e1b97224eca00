package serviceorders

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

type ServiceOrderMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceOrderMongoRepository(db *mongo.Client, dbName string) contracts.ServiceOrderRepository {
	return &ServiceOrderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServiceOrders),
	}
}

func (r *ServiceOrderMongoRepository) CreateServiceOrder(ctx context.Context, order *models.ServiceOrder) (*models.ServiceOrder, error) {
	result, err := r.Collection.InsertOne(ctx, order)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (r *ServiceOrderMongoRepository) FindByID(ctx context.Context, orderID string) (*models.ServiceOrder, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var order models.ServiceOrder
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &order, nil
}

func (r *ServiceOrderMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.ServiceOrder, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": objectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var orders []models.ServiceOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}

func (r *ServiceOrderMongoRepository) AttachBilling(ctx context.Context, orderID primitive.ObjectID, billingID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":       orderID,
		"billingId": bson.M{"$exists": false},
		"status":    bson.M{"$nin": bson.A{constvars.OrderStatusPaid, constvars.OrderStatusCancelled, constvars.OrderStatusCompleted}},
	}
	update := bson.M{"$set": bson.M{
		"billingId": billingID,
		"status":    constvars.OrderStatusPendingPayment,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *ServiceOrderMongoRepository) CancelOrder(ctx context.Context, orderID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":    orderID,
		"status": bson.M{"$nin": bson.A{constvars.OrderStatusCancelled, constvars.OrderStatusCompleted}},
	}
	update := bson.M{"$set": bson.M{
		"status":    constvars.OrderStatusCancelled,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}
