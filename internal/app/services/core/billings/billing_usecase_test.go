package billings

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeBillingRepo struct {
	existing *models.Billing
	created  *models.Billing
	deleted  []primitive.ObjectID
}

func (f *fakeBillingRepo) CreateBilling(ctx context.Context, billing *models.Billing) (*models.Billing, error) {
	billing.ID = primitive.NewObjectID()
	f.created = billing
	return billing, nil
}

func (f *fakeBillingRepo) FindByID(ctx context.Context, billingID string) (*models.Billing, error) {
	return f.existing, nil
}

func (f *fakeBillingRepo) FindByServiceOrderID(ctx context.Context, orderID string) (*models.Billing, error) {
	return f.existing, nil
}

func (f *fakeBillingRepo) DeleteBilling(ctx context.Context, billingID primitive.ObjectID) error {
	f.deleted = append(f.deleted, billingID)
	if f.created != nil && f.created.ID == billingID {
		f.created = nil
	}
	return nil
}

type fakeServiceOrderRepo struct {
	order         *models.ServiceOrder
	attachMatched bool
	attachCalls   int
}

func (f *fakeServiceOrderRepo) CreateServiceOrder(ctx context.Context, order *models.ServiceOrder) (*models.ServiceOrder, error) {
	return order, nil
}

func (f *fakeServiceOrderRepo) FindByID(ctx context.Context, orderID string) (*models.ServiceOrder, error) {
	return f.order, nil
}

func (f *fakeServiceOrderRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.ServiceOrder, error) {
	return nil, nil
}

func (f *fakeServiceOrderRepo) AttachBilling(ctx context.Context, orderID, billingID primitive.ObjectID) (bool, error) {
	f.attachCalls++
	return f.attachMatched, nil
}

func (f *fakeServiceOrderRepo) CancelOrder(ctx context.Context, orderID primitive.ObjectID) (bool, error) {
	return true, nil
}

type fakeAuditRepo struct {
	entries []*models.AuditLog
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry *models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func newBillingFixture(order *models.ServiceOrder) (*billingUsecase, *fakeBillingRepo, *fakeServiceOrderRepo, *fakeAuditRepo) {
	billingRepo := &fakeBillingRepo{}
	orderRepo := &fakeServiceOrderRepo{order: order, attachMatched: true}
	auditRepo := &fakeAuditRepo{}
	usecase := &billingUsecase{
		BillingRepository:      billingRepo,
		ServiceOrderRepository: orderRepo,
		AuditLogRepository:     auditRepo,
		Log:                    zap.NewNop(),
	}
	return usecase, billingRepo, orderRepo, auditRepo
}

func pendingOrder(items []models.OrderItem) *models.ServiceOrder {
	return &models.ServiceOrder{
		ID:        primitive.NewObjectID(),
		Kind:      constvars.OrderKindLabOrder,
		PatientID: primitive.NewObjectID(),
		Items:     items,
		Status:    constvars.OrderStatusPendingPayment,
	}
}

func TestGenerateBilling(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleLabAssistant}
	meta := contracts.RequestMetadata{IPAddress: "10.0.0.1", UserAgent: "test"}

	t.Run("Subtotal Is Sum Of Quantity Times Price", func(t *testing.T) {
		order := pendingOrder([]models.OrderItem{
			{Description: "Complete blood count", UnitPrice: 1200, Quantity: 2},
			{Description: "Malaria smear", UnitPrice: 350.5, Quantity: 3},
		})
		usecase, _, _, audit := newBillingFixture(order)

		billing, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.NoError(t, err)
		assert.Equal(t, 2400+1051.5, billing.Subtotal)
		assert.Equal(t, billing.Subtotal, billing.Total)
		assert.Equal(t, constvars.BillingStatusPending, billing.Status)
		assert.Equal(t, constvars.PaymentTypeLabTest, billing.PaymentType)
		assert.Equal(t, order.ID, *billing.ServiceOrderID)
		assert.Len(t, audit.entries, 1)
	})

	t.Run("Zero Item Order Yields Zero Amount Ledger", func(t *testing.T) {
		order := pendingOrder(nil)
		usecase, _, _, _ := newBillingFixture(order)

		billing, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.NoError(t, err)
		assert.Zero(t, billing.Subtotal)
		assert.Zero(t, billing.Total)
		assert.Equal(t, constvars.BillingStatusPending, billing.Status)
	})

	t.Run("Procedure Order Maps To Procedure Payment Type", func(t *testing.T) {
		order := pendingOrder([]models.OrderItem{{Description: "Wound dressing", UnitPrice: 500, Quantity: 1}})
		order.Kind = constvars.OrderKindProcedure
		usecase, _, _, _ := newBillingFixture(order)

		billing, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.NoError(t, err)
		assert.Equal(t, constvars.PaymentTypeProcedure, billing.PaymentType)
	})

	t.Run("Existing Ledger Rejected With Conflict", func(t *testing.T) {
		order := pendingOrder([]models.OrderItem{{Description: "Complete blood count", UnitPrice: 1200, Quantity: 1}})
		usecase, billingRepo, orderRepo, _ := newBillingFixture(order)
		billingRepo.existing = &models.Billing{ID: primitive.NewObjectID(), ServiceOrderID: &order.ID}

		_, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 0, orderRepo.attachCalls)
	})

	t.Run("Paid Order Not Billable", func(t *testing.T) {
		order := pendingOrder([]models.OrderItem{{Description: "Complete blood count", UnitPrice: 1200, Quantity: 1}})
		order.Status = constvars.OrderStatusPaid
		usecase, _, _, _ := newBillingFixture(order)

		_, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Lost Attach Race Returns Conflict", func(t *testing.T) {
		order := pendingOrder([]models.OrderItem{{Description: "Complete blood count", UnitPrice: 1200, Quantity: 1}})
		usecase, _, orderRepo, audit := newBillingFixture(order)
		orderRepo.attachMatched = false

		_, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, audit.entries)
	})

	t.Run("Lost Attach Race Leaves No Ledger Behind", func(t *testing.T) {
		order := pendingOrder([]models.OrderItem{{Description: "Complete blood count", UnitPrice: 1200, Quantity: 1}})
		usecase, billingRepo, orderRepo, _ := newBillingFixture(order)
		orderRepo.attachMatched = false

		_, err := usecase.GenerateBilling(context.Background(), order.ID.Hex(), actor, meta)

		assert.Error(t, err)
		assert.Len(t, billingRepo.deleted, 1, "the unattached ledger must be removed")
		assert.Nil(t, billingRepo.created, "no ledger may survive claiming the order")
	})

	t.Run("Unknown Order Returns Not Found", func(t *testing.T) {
		usecase, _, _, _ := newBillingFixture(nil)

		_, err := usecase.GenerateBilling(context.Background(), primitive.NewObjectID().Hex(), actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestGetPaymentStatus(t *testing.T) {
	t.Run("No Ledger Yet", func(t *testing.T) {
		order := pendingOrder(nil)
		usecase, _, _, _ := newBillingFixture(order)

		status, err := usecase.GetPaymentStatus(context.Background(), order.ID.Hex())

		assert.NoError(t, err)
		assert.False(t, status.Paid)
		assert.NotEmpty(t, status.Message)
		assert.Empty(t, status.BillingID)
	})

	t.Run("Pending Ledger", func(t *testing.T) {
		order := pendingOrder(nil)
		usecase, billingRepo, _, _ := newBillingFixture(order)
		billingRepo.existing = &models.Billing{
			ID:     primitive.NewObjectID(),
			Status: constvars.BillingStatusPending,
			Total:  1200,
		}

		status, err := usecase.GetPaymentStatus(context.Background(), order.ID.Hex())

		assert.NoError(t, err)
		assert.False(t, status.Paid)
		assert.Equal(t, constvars.BillingStatusPending, status.BillingStatus)
		assert.Equal(t, float64(1200), status.Amount)
	})

	t.Run("Paid Ledger", func(t *testing.T) {
		order := pendingOrder(nil)
		usecase, billingRepo, _, _ := newBillingFixture(order)
		billingRepo.existing = &models.Billing{
			ID:     primitive.NewObjectID(),
			Status: constvars.BillingStatusPaid,
			Total:  1200,
		}

		status, err := usecase.GetPaymentStatus(context.Background(), order.ID.Hex())

		assert.NoError(t, err)
		assert.True(t, status.Paid)
	})
}
