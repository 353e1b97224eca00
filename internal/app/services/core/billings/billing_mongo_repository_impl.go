package billings

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BillingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBillingMongoRepository(db *mongo.Client, dbName string) contracts.BillingRepository {
	return &BillingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBillings),
	}
}

func (r *BillingMongoRepository) CreateBilling(ctx context.Context, billing *models.Billing) (*models.Billing, error) {
	result, err := r.Collection.InsertOne(ctx, billing)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	billing.ID = result.InsertedID.(primitive.ObjectID)
	return billing, nil
}

func (r *BillingMongoRepository) FindByID(ctx context.Context, billingID string) (*models.Billing, error) {
	objectID, err := primitive.ObjectIDFromHex(billingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var billing models.Billing
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&billing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &billing, nil
}

func (r *BillingMongoRepository) DeleteBilling(ctx context.Context, billingID primitive.ObjectID) error {
	if _, err := r.Collection.DeleteOne(ctx, bson.M{"_id": billingID}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *BillingMongoRepository) FindByServiceOrderID(ctx context.Context, orderID string) (*models.Billing, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var billing models.Billing
	err = r.Collection.FindOne(ctx, bson.M{"serviceOrderId": objectID}).Decode(&billing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &billing, nil
}
