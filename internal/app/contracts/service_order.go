package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceOrderRepository interface {
	CreateServiceOrder(ctx context.Context, order *models.ServiceOrder) (*models.ServiceOrder, error)
	FindByID(ctx context.Context, orderID string) (*models.ServiceOrder, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.ServiceOrder, error)
	// AttachBilling links a ledger to the order and moves it to
	// pending-payment. The update is conditional on no ledger being linked
	// yet; matched reports whether the write applied.
	AttachBilling(ctx context.Context, orderID primitive.ObjectID, billingID primitive.ObjectID) (matched bool, err error)
	// CancelOrder is conditional on the order not being cancelled or
	// completed already.
	CancelOrder(ctx context.Context, orderID primitive.ObjectID) (matched bool, err error)
}

type ServiceOrderUsecase interface {
	CreateServiceOrder(ctx context.Context, request *requests.CreateServiceOrder, actor models.Actor, meta RequestMetadata) (*models.ServiceOrder, error)
	GetServiceOrderByID(ctx context.Context, orderID string) (*models.ServiceOrder, error)
	ListServiceOrdersByPatient(ctx context.Context, patientID string) ([]models.ServiceOrder, error)
	CancelServiceOrder(ctx context.Context, orderID string, actor models.Actor, meta RequestMetadata) (*models.ServiceOrder, error)
}

// RequestMetadata carries per-request audit facts that are not part of the
// business payload.
type RequestMetadata struct {
	IPAddress string
	UserAgent string
}
