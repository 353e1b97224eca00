package consultations

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

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (r *ConsultationMongoRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	result, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	consultation.ID = result.InsertedID.(primitive.ObjectID)
	return consultation, nil
}

func (r *ConsultationMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
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

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

type MedicalHistoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalHistoryMongoRepository(db *mongo.Client, dbName string) contracts.MedicalHistoryRepository {
	return &MedicalHistoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalHistories),
	}
}

func (r *MedicalHistoryMongoRepository) CreateMedicalHistory(ctx context.Context, history *models.MedicalHistory) (*models.MedicalHistory, error) {
	result, err := r.Collection.InsertOne(ctx, history)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	history.ID = result.InsertedID.(primitive.ObjectID)
	return history, nil
}
