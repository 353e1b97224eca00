package payments

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SettlementMongoRepository owns the multi-document settlement write. All
// three writes share one transaction so a crash mid-settlement never leaves
// an order paid without its payment record.
type SettlementMongoRepository struct {
	Client            *mongo.Client
	OrderCollection   *mongo.Collection
	BillingCollection *mongo.Collection
	PaymentCollection *mongo.Collection
}

func NewSettlementMongoRepository(db *mongo.Client, dbName string) contracts.SettlementRepository {
	database := db.Database(dbName)
	return &SettlementMongoRepository{
		Client:            db,
		OrderCollection:   database.Collection(constvars.MongoCollectionServiceOrders),
		BillingCollection: database.Collection(constvars.MongoCollectionBillings),
		PaymentCollection: database.Collection(constvars.MongoCollectionPayments),
	}
}

func (r *SettlementMongoRepository) ExecuteSettlement(ctx context.Context, payment *models.Payment) (*models.ServiceOrder, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	session, err := r.Client.StartSession()
	if err != nil {
		return nil, exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		now := time.Now()

		// The order flip is the linearization point. Only one concurrent
		// settlement can match status pending-payment.
		orderFilter := bson.M{
			"_id":    payment.ServiceOrderID,
			"status": constvars.OrderStatusPendingPayment,
		}
		orderUpdate := bson.M{
			"$set": bson.M{
				"status":        constvars.OrderStatusPaid,
				"paymentStatus": constvars.PaymentStatusPaid,
				"paymentId":     payment.ID,
				"updatedAt":     now,
			},
			"$unset": bson.M{"billingId": ""},
		}
		orderResult, err := r.OrderCollection.UpdateOne(sessCtx, orderFilter, orderUpdate)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		if orderResult.MatchedCount == 0 {
			return nil, exceptions.ErrOrderAlreadyPaid(nil)
		}

		billingFilter := bson.M{
			"_id":    payment.BillingID,
			"status": bson.M{"$ne": constvars.BillingStatusPaid},
		}
		billingUpdate := bson.M{"$set": bson.M{
			"status":    constvars.BillingStatusPaid,
			"paymentId": payment.ID,
			"updatedAt": now,
		}}
		billingResult, err := r.BillingCollection.UpdateOne(sessCtx, billingFilter, billingUpdate)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		if billingResult.MatchedCount == 0 {
			// The order was payable but its ledger is already marked paid.
			// Aborting here rolls back the order flip.
			return nil, exceptions.ErrSettlementInconsistent(nil)
		}

		if _, err := r.PaymentCollection.InsertOne(sessCtx, payment); err != nil {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}

		var order models.ServiceOrder
		if err := r.OrderCollection.FindOne(sessCtx, bson.M{"_id": payment.ServiceOrderID}).Decode(&order); err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		return &order, nil
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return nil, customErr
		}
		return nil, exceptions.ErrMongoDBTransaction(err)
	}

	return result.(*models.ServiceOrder), nil
}
