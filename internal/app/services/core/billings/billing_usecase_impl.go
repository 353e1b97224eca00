package billings

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/responses"
	"emr-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type billingUsecase struct {
	BillingRepository      contracts.BillingRepository
	ServiceOrderRepository contracts.ServiceOrderRepository
	AuditLogRepository     contracts.AuditLogRepository
	Log                    *zap.Logger
}

var (
	billingUsecaseInstance contracts.BillingUsecase
	onceBillingUsecase     sync.Once
)

func NewBillingUsecase(
	billingRepository contracts.BillingRepository,
	serviceOrderRepository contracts.ServiceOrderRepository,
	auditLogRepository contracts.AuditLogRepository,
	logger *zap.Logger,
) contracts.BillingUsecase {
	onceBillingUsecase.Do(func() {
		instance := &billingUsecase{
			BillingRepository:      billingRepository,
			ServiceOrderRepository: serviceOrderRepository,
			AuditLogRepository:     auditLogRepository,
			Log:                    logger,
		}
		billingUsecaseInstance = instance
	})
	return billingUsecaseInstance
}

func (uc *billingUsecase) GenerateBilling(ctx context.Context, orderID string, actor models.Actor, meta contracts.RequestMetadata) (*models.Billing, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.GenerateBilling called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingActorIDKey, actor.ID),
	)

	order, err := uc.ServiceOrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrServiceOrderNotFound(nil)
	}
	if order.Status == constvars.OrderStatusPaid || order.Status == constvars.OrderStatusCancelled || order.Status == constvars.OrderStatusCompleted {
		return nil, exceptions.ErrOrderNotPayable(nil)
	}

	existing, err := uc.BillingRepository.FindByServiceOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrBillingAlreadyExists(nil)
	}

	actorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	// Billed lines are snapshots of the order items. A zero-item order yields
	// a zero-amount ledger, which is still settleable.
	items := make([]models.BillingItem, 0, len(order.Items))
	var subtotal float64
	for _, item := range order.Items {
		lineTotal := item.Total()
		items = append(items, models.BillingItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       lineTotal,
		})
		subtotal += lineTotal
	}

	paymentType := constvars.PaymentTypeProcedure
	if order.Kind == constvars.OrderKindLabOrder {
		paymentType = constvars.PaymentTypeLabTest
	}

	now := time.Now()
	billing := &models.Billing{
		PatientID:      order.PatientID,
		Items:          items,
		Subtotal:       subtotal,
		Total:          subtotal,
		Status:         constvars.BillingStatusPending,
		PaymentType:    paymentType,
		ServiceOrderID: &order.ID,
		CreatedByID:    actorID,
		CreatedByRole:  actor.Role,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.BillingRepository.CreateBilling(ctx, billing)
	if err != nil {
		return nil, err
	}

	matched, err := uc.ServiceOrderRepository.AttachBilling(ctx, order.ID, created.ID)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost the race: another request linked a ledger between our existence
		// check and the conditional update. Remove our ledger so the order is
		// never shadowed by an unattached duplicate.
		uc.Log.Warn("billingUsecase.GenerateBilling lost attach race",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.String(constvars.LoggingBillingIDKey, created.ID.Hex()),
		)
		if err := uc.BillingRepository.DeleteBilling(ctx, created.ID); err != nil {
			uc.Log.Error("billingUsecase.GenerateBilling error deleting unattached ledger",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBillingIDKey, created.ID.Hex()),
				zap.Error(err),
			)
		}
		return nil, exceptions.ErrBillingAlreadyExists(nil)
	}

	uc.appendAudit(ctx, order.ID, created, actor, meta)

	uc.Log.Info("billingUsecase.GenerateBilling completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillingIDKey, created.ID.Hex()),
		zap.Float64(constvars.LoggingAmountKey, created.Total),
	)
	return created, nil
}

func (uc *billingUsecase) GetPaymentStatus(ctx context.Context, orderID string) (*responses.PaymentStatus, error) {
	order, err := uc.ServiceOrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrServiceOrderNotFound(nil)
	}

	billing, err := uc.BillingRepository.FindByServiceOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return &responses.PaymentStatus{
			Paid:    false,
			Message: "No billing has been generated for this order",
		}, nil
	}

	return &responses.PaymentStatus{
		Paid:          billing.Status == constvars.BillingStatusPaid,
		BillingStatus: billing.Status,
		BillingID:     billing.ID.Hex(),
		Amount:        billing.Total,
	}, nil
}

func (uc *billingUsecase) appendAudit(ctx context.Context, orderID primitive.ObjectID, billing *models.Billing, actor models.Actor, meta contracts.RequestMetadata) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	entry := &models.AuditLog{
		Action:   constvars.AuditActionBilling,
		Entity:   constvars.MongoCollectionBillings,
		EntityID: &billing.ID,
		UserID:   billing.CreatedByID,
		UserRole: actor.Role,
		Changes: &models.AuditChanges{
			From:   "",
			To:     constvars.BillingStatusPending,
			Amount: billing.Total,
		},
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := uc.AuditLogRepository.Append(ctx, entry); err != nil {
		uc.Log.Warn("billingUsecase.appendAudit error writing audit entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID.Hex()),
			zap.Error(err),
		)
	}
}
