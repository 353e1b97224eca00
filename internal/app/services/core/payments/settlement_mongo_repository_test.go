package payments

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs only against a real replica-set MongoDB (transactions require one).
// Set MONGO_TEST_URI, e.g. mongodb://localhost:27017/?replicaSet=rs0.
func TestExecuteSettlement(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connecting to mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	database := client.Database("emr_service_test")
	defer database.Drop(ctx)

	repo := &SettlementMongoRepository{
		Client:            client,
		OrderCollection:   database.Collection(constvars.MongoCollectionServiceOrders),
		BillingCollection: database.Collection(constvars.MongoCollectionBillings),
		PaymentCollection: database.Collection(constvars.MongoCollectionPayments),
	}

	seed := func(t *testing.T) (*models.ServiceOrder, *models.Billing) {
		t.Helper()
		orderID := primitive.NewObjectID()
		billingID := primitive.NewObjectID()
		now := time.Now()
		order := &models.ServiceOrder{
			ID:        orderID,
			Kind:      constvars.OrderKindLabOrder,
			PatientID: primitive.NewObjectID(),
			Status:    constvars.OrderStatusPendingPayment,
			BillingID: &billingID,
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		billing := &models.Billing{
			ID:             billingID,
			PatientID:      order.PatientID,
			Total:          1200,
			Status:         constvars.BillingStatusPending,
			PaymentType:    constvars.PaymentTypeLabTest,
			ServiceOrderID: &orderID,
			TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		_, err := repo.OrderCollection.InsertOne(ctx, order)
		assert.NoError(t, err)
		_, err = repo.BillingCollection.InsertOne(ctx, billing)
		assert.NoError(t, err)
		return order, billing
	}

	newPayment := func(order *models.ServiceOrder, billing *models.Billing) *models.Payment {
		now := time.Now()
		return &models.Payment{
			ID:               primitive.NewObjectID(),
			ReceiptNumber:    "REC-1-1",
			BillingID:        billing.ID,
			PatientID:        order.PatientID,
			ServiceOrderID:   order.ID,
			ServiceOrderKind: order.Kind,
			Amount:           billing.Total,
			PaymentMethod:    constvars.PaymentMethodCash,
			PaymentType:      billing.PaymentType,
			Status:           constvars.PaymentStatusPaid,
			ProcessedByID:    primitive.NewObjectID(),
			TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
	}

	t.Run("Flips Order And Ledger And Inserts Payment", func(t *testing.T) {
		order, billing := seed(t)

		updated, err := repo.ExecuteSettlement(ctx, newPayment(order, billing))

		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusPaid, updated.Status)
		assert.Nil(t, updated.BillingID, "billing reference must be unset on the paid order")
		assert.NotNil(t, updated.PaymentID)

		var storedBilling models.Billing
		err = repo.BillingCollection.FindOne(ctx, bson.M{"_id": billing.ID}).Decode(&storedBilling)
		assert.NoError(t, err)
		assert.Equal(t, constvars.BillingStatusPaid, storedBilling.Status)

		count, err := repo.PaymentCollection.CountDocuments(ctx, bson.M{"serviceOrderId": order.ID})
		assert.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("Second Settlement Aborts On Matched Count", func(t *testing.T) {
		order, billing := seed(t)

		_, err := repo.ExecuteSettlement(ctx, newPayment(order, billing))
		assert.NoError(t, err)

		_, err = repo.ExecuteSettlement(ctx, newPayment(order, billing))
		assert.Error(t, err)

		count, err := repo.PaymentCollection.CountDocuments(ctx, bson.M{"serviceOrderId": order.ID})
		assert.NoError(t, err)
		assert.EqualValues(t, 1, count, "the aborted settlement must leave no payment record")
	})

	t.Run("Paid Ledger Rolls Back The Order Flip", func(t *testing.T) {
		order, billing := seed(t)
		_, err := repo.BillingCollection.UpdateOne(ctx,
			bson.M{"_id": billing.ID},
			bson.M{"$set": bson.M{"status": constvars.BillingStatusPaid}},
		)
		assert.NoError(t, err)

		_, err = repo.ExecuteSettlement(ctx, newPayment(order, billing))
		assert.Error(t, err)

		var storedOrder models.ServiceOrder
		err = repo.OrderCollection.FindOne(ctx, bson.M{"_id": order.ID}).Decode(&storedOrder)
		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusPendingPayment, storedOrder.Status, "the order flip must be rolled back")
		assert.NotNil(t, storedOrder.BillingID)
	})
}
