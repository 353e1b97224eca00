package vitalsigns

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VitalSignsMongoRepository struct {
	Collection *mongo.Collection
}

func NewVitalSignsMongoRepository(db *mongo.Client, dbName string) contracts.VitalSignsRepository {
	return &VitalSignsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVitalSigns),
	}
}

func (r *VitalSignsMongoRepository) CreateVitalSigns(ctx context.Context, vitalSigns *models.VitalSigns) (*models.VitalSigns, error) {
	result, err := r.Collection.InsertOne(ctx, vitalSigns)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	vitalSigns.ID = result.InsertedID.(primitive.ObjectID)
	return vitalSigns, nil
}

func (r *VitalSignsMongoRepository) FindByID(ctx context.Context, vitalSignsID string) (*models.VitalSigns, error) {
	objectID, err := primitive.ObjectIDFromHex(vitalSignsID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var vitalSigns models.VitalSigns
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vitalSigns)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &vitalSigns, nil
}

func (r *VitalSignsMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.VitalSigns, error) {
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

	var records []models.VitalSigns
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
