package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillingRepository interface {
	CreateBilling(ctx context.Context, billing *models.Billing) (*models.Billing, error)
	FindByID(ctx context.Context, billingID string) (*models.Billing, error)
	FindByServiceOrderID(ctx context.Context, orderID string) (*models.Billing, error)
	DeleteBilling(ctx context.Context, billingID primitive.ObjectID) error
}

type BillingUsecase interface {
	GenerateBilling(ctx context.Context, orderID string, actor models.Actor, meta RequestMetadata) (*models.Billing, error)
	GetPaymentStatus(ctx context.Context, orderID string) (*responses.PaymentStatus, error)
}
