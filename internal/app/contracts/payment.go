package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByServiceOrderID(ctx context.Context, orderID string) (*models.Payment, error)
}

// SettlementRepository applies the three settlement writes as one unit of
// consistency. ExecuteSettlement runs inside a single MongoDB transaction:
// a conditional update flips the order pending-payment -> paid (zero matched
// documents aborts with ErrOrderAlreadyPaid), the billing ledger is marked
// paid, and the payment record is inserted. It returns the updated order.
type SettlementRepository interface {
	ExecuteSettlement(ctx context.Context, payment *models.Payment) (*models.ServiceOrder, error)
}

type SettlementUsecase interface {
	SettlePayment(ctx context.Context, request *requests.SettlePayment, actor models.Actor, meta RequestMetadata) (*responses.Settlement, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error)
	GetPaymentByServiceOrderID(ctx context.Context, orderID string) (*models.Payment, error)
}
