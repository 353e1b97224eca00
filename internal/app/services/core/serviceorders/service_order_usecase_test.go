package serviceorders

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeServiceOrderRepo struct {
	order         *models.ServiceOrder
	cancelMatched bool
}

func (f *fakeServiceOrderRepo) CreateServiceOrder(ctx context.Context, order *models.ServiceOrder) (*models.ServiceOrder, error) {
	order.ID = primitive.NewObjectID()
	f.order = order
	return order, nil
}

func (f *fakeServiceOrderRepo) FindByID(ctx context.Context, orderID string) (*models.ServiceOrder, error) {
	return f.order, nil
}

func (f *fakeServiceOrderRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.ServiceOrder, error) {
	if f.order == nil {
		return nil, nil
	}
	return []models.ServiceOrder{*f.order}, nil
}

func (f *fakeServiceOrderRepo) AttachBilling(ctx context.Context, orderID, billingID primitive.ObjectID) (bool, error) {
	return true, nil
}

func (f *fakeServiceOrderRepo) CancelOrder(ctx context.Context, orderID primitive.ObjectID) (bool, error) {
	if f.cancelMatched {
		f.order.Status = constvars.OrderStatusCancelled
	}
	return f.cancelMatched, nil
}

type fakePatientRepo struct {
	patient *models.Patient
}

func (f *fakePatientRepo) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return patient, nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepo) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepo) UpdateLastVisit(ctx context.Context, patientID string, lastVisit time.Time) error {
	return nil
}

type fakeAuditRepo struct {
	entries []*models.AuditLog
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry *models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func newServiceOrderFixture() (*serviceOrderUsecase, *fakeServiceOrderRepo, *fakeAuditRepo, *models.Patient) {
	patient := &models.Patient{ID: primitive.NewObjectID()}
	orderRepo := &fakeServiceOrderRepo{cancelMatched: true}
	auditRepo := &fakeAuditRepo{}
	usecase := &serviceOrderUsecase{
		ServiceOrderRepository: orderRepo,
		PatientRepository:      &fakePatientRepo{patient: patient},
		AuditLogRepository:     auditRepo,
		Log:                    zap.NewNop(),
	}
	return usecase, orderRepo, auditRepo, patient
}

func TestCreateServiceOrder(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleDoctor}
	meta := contracts.RequestMetadata{IPAddress: "10.0.0.1", UserAgent: "test"}

	t.Run("New Order Starts Pending Payment", func(t *testing.T) {
		usecase, _, audit, patient := newServiceOrderFixture()

		order, err := usecase.CreateServiceOrder(context.Background(), &requests.CreateServiceOrder{
			Kind:      constvars.OrderKindLabOrder,
			PatientID: patient.ID.Hex(),
			Items: []requests.OrderItemRequest{
				{Description: "Complete blood count", UnitPrice: 1200, Quantity: 1},
			},
		}, actor, meta)

		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusPendingPayment, order.Status)
		assert.Equal(t, patient.ID, order.PatientID)
		assert.Equal(t, actor.Role, order.OrderedByRole)
		assert.Nil(t, order.BillingID)
		assert.Nil(t, order.PaymentID)
		assert.Len(t, audit.entries, 1)
	})

	t.Run("Unknown Patient Rejected", func(t *testing.T) {
		usecase, _, _, _ := newServiceOrderFixture()
		usecase.PatientRepository = &fakePatientRepo{}

		_, err := usecase.CreateServiceOrder(context.Background(), &requests.CreateServiceOrder{
			Kind:      constvars.OrderKindProcedure,
			PatientID: primitive.NewObjectID().Hex(),
		}, actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Items Subtotal Uses Quantity", func(t *testing.T) {
		usecase, _, _, patient := newServiceOrderFixture()

		order, err := usecase.CreateServiceOrder(context.Background(), &requests.CreateServiceOrder{
			Kind:      constvars.OrderKindLabOrder,
			PatientID: patient.ID.Hex(),
			Items: []requests.OrderItemRequest{
				{Description: "Complete blood count", UnitPrice: 1200, Quantity: 2},
				{Description: "Urinalysis", UnitPrice: 400, Quantity: 1},
			},
		}, actor, meta)

		assert.NoError(t, err)
		assert.Equal(t, float64(2800), order.ItemsSubtotal())
	})
}

func TestCancelServiceOrder(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleDoctor}
	meta := contracts.RequestMetadata{IPAddress: "10.0.0.1", UserAgent: "test"}

	t.Run("Pending Order Cancelled", func(t *testing.T) {
		usecase, orderRepo, audit, _ := newServiceOrderFixture()
		orderRepo.order = &models.ServiceOrder{
			ID:     primitive.NewObjectID(),
			Status: constvars.OrderStatusPendingPayment,
		}

		order, err := usecase.CancelServiceOrder(context.Background(), orderRepo.order.ID.Hex(), actor, meta)

		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusCancelled, order.Status)
		assert.Len(t, audit.entries, 1)
		assert.Equal(t, constvars.AuditActionCancel, audit.entries[0].Action)
	})

	t.Run("Already Cancelled Order Rejected", func(t *testing.T) {
		usecase, orderRepo, _, _ := newServiceOrderFixture()
		orderRepo.order = &models.ServiceOrder{
			ID:     primitive.NewObjectID(),
			Status: constvars.OrderStatusCancelled,
		}
		orderRepo.cancelMatched = false

		_, err := usecase.CancelServiceOrder(context.Background(), orderRepo.order.ID.Hex(), actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Missing Order Not Found", func(t *testing.T) {
		usecase, _, _, _ := newServiceOrderFixture()

		_, err := usecase.CancelServiceOrder(context.Background(), primitive.NewObjectID().Hex(), actor, meta)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
