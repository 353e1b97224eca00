package payments

import (
	"context"
	"emr-service/internal/app/config"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/dto/responses"
	"emr-service/internal/pkg/exceptions"
	"emr-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type settlementUsecase struct {
	SettlementRepository   contracts.SettlementRepository
	PaymentRepository      contracts.PaymentRepository
	ServiceOrderRepository contracts.ServiceOrderRepository
	BillingRepository      contracts.BillingRepository
	UserRepository         contracts.UserRepository
	NotificationRepository contracts.NotificationRepository
	NotificationPublisher  contracts.NotificationPublisher
	AuditLogRepository     contracts.AuditLogRepository
	LockerService          contracts.LockerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	settlementUsecaseInstance contracts.SettlementUsecase
	onceSettlementUsecase     sync.Once
)

func NewSettlementUsecase(
	settlementRepository contracts.SettlementRepository,
	paymentRepository contracts.PaymentRepository,
	serviceOrderRepository contracts.ServiceOrderRepository,
	billingRepository contracts.BillingRepository,
	userRepository contracts.UserRepository,
	notificationRepository contracts.NotificationRepository,
	notificationPublisher contracts.NotificationPublisher,
	auditLogRepository contracts.AuditLogRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SettlementUsecase {
	onceSettlementUsecase.Do(func() {
		instance := &settlementUsecase{
			SettlementRepository:   settlementRepository,
			PaymentRepository:      paymentRepository,
			ServiceOrderRepository: serviceOrderRepository,
			BillingRepository:      billingRepository,
			UserRepository:         userRepository,
			NotificationRepository: notificationRepository,
			NotificationPublisher:  notificationPublisher,
			AuditLogRepository:     auditLogRepository,
			LockerService:          lockerService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		settlementUsecaseInstance = instance
	})
	return settlementUsecaseInstance
}

func (uc *settlementUsecase) SettlePayment(ctx context.Context, request *requests.SettlePayment, actor models.Actor, meta contracts.RequestMetadata) (*responses.Settlement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settlementUsecase.SettlePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.ServiceOrderID),
		zap.String(constvars.LoggingActorIDKey, actor.ID),
		zap.Float64(constvars.LoggingAmountKey, request.Amount),
	)

	lockKey := fmt.Sprintf(constvars.SETTLEMENT_LOCK_KEY, request.ServiceOrderID)
	lockTTL := time.Duration(uc.InternalConfig.Settlement.LockTTLSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("settlementUsecase.SettlePayment lock already held",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrSettlementInProgress(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("settlementUsecase.SettlePayment failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	order, err := uc.ServiceOrderRepository.FindByID(ctx, request.ServiceOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrServiceOrderNotFound(nil)
	}
	switch order.Status {
	case constvars.OrderStatusPendingPayment:
	case constvars.OrderStatusPaid:
		return nil, exceptions.ErrOrderAlreadyPaid(nil)
	default:
		return nil, exceptions.ErrOrderNotPayable(nil)
	}

	if existing, err := uc.PaymentRepository.FindByServiceOrderID(ctx, request.ServiceOrderID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, exceptions.ErrOrderAlreadyPaid(nil)
	}

	// Resolve the ledger through the order's own reference so a stray ledger
	// pointing at this order can never be the one settled.
	if order.BillingID == nil {
		return nil, exceptions.ErrOrderNotPayable(nil)
	}
	billing, err := uc.BillingRepository.FindByID(ctx, order.BillingID.Hex())
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, exceptions.ErrOrderNotPayable(nil)
	}
	if billing.Status == constvars.BillingStatusPaid {
		return nil, exceptions.ErrOrderAlreadyPaid(nil)
	}

	amount := request.Amount
	if amount == 0 {
		amount = billing.Total
	}

	actorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	payment := &models.Payment{
		ID:               primitive.NewObjectID(),
		ReceiptNumber:    utils.GenerateReceiptNumber(now),
		BillingID:        billing.ID,
		PatientID:        order.PatientID,
		ServiceOrderID:   order.ID,
		ServiceOrderKind: order.Kind,
		Amount:           amount,
		PaymentMethod:    request.PaymentMethod,
		PaymentType:      billing.PaymentType,
		Status:           constvars.PaymentStatusPaid,
		Notes:            request.Notes,
		ProcessedByID:    actorID,
		ProcessedByRole:  actor.Role,
		TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	updatedOrder, err := uc.SettlementRepository.ExecuteSettlement(ctx, payment)
	if err != nil {
		uc.Log.Error("settlementUsecase.SettlePayment settlement transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.ServiceOrderID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.appendAudit(ctx, order.Status, payment, actor, meta)
	uc.notifySettlement(ctx, payment, actor)

	uc.Log.Info("settlementUsecase.SettlePayment completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID.Hex()),
		zap.String(constvars.LoggingReceiptNumberKey, payment.ReceiptNumber),
		zap.Float64(constvars.LoggingAmountKey, payment.Amount),
	)

	return &responses.Settlement{
		Payment:      payment,
		ServiceOrder: updatedOrder,
	}, nil
}

func (uc *settlementUsecase) GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}
	return payment, nil
}

func (uc *settlementUsecase) GetPaymentByServiceOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindByServiceOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}
	return payment, nil
}

// appendAudit records the settlement after commit. The payment has already
// succeeded, so failures here are logged and swallowed.
func (uc *settlementUsecase) appendAudit(ctx context.Context, previousStatus string, payment *models.Payment, actor models.Actor, meta contracts.RequestMetadata) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	entry := &models.AuditLog{
		Action:   constvars.AuditActionPayment,
		Entity:   constvars.MongoCollectionServiceOrders,
		EntityID: &payment.ServiceOrderID,
		UserID:   payment.ProcessedByID,
		UserRole: actor.Role,
		Changes: &models.AuditChanges{
			From:      previousStatus,
			To:        constvars.OrderStatusPaid,
			PaymentID: &payment.ID,
			Amount:    payment.Amount,
		},
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := uc.AuditLogRepository.Append(ctx, entry); err != nil {
		uc.Log.Warn("settlementUsecase.appendAudit error writing audit entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, payment.ID.Hex()),
			zap.Error(err),
		)
	}
}

// notifySettlement fans the receipt out to every user holding the configured
// role. Notification persistence and queue delivery are both best-effort.
func (uc *settlementUsecase) notifySettlement(ctx context.Context, payment *models.Payment, actor models.Actor) {
	if !uc.InternalConfig.Settlement.NotifyOnSettlement {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	recipients, err := uc.UserRepository.FindByRole(ctx, uc.InternalConfig.Settlement.NotificationRole)
	if err != nil {
		uc.Log.Warn("settlementUsecase.notifySettlement error finding recipients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientRoleKey, uc.InternalConfig.Settlement.NotificationRole),
			zap.Error(err),
		)
		return
	}

	actorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return
	}

	message := fmt.Sprintf("Payment of %.2f received for service order %s, receipt %s",
		payment.Amount, payment.ServiceOrderID.Hex(), payment.ReceiptNumber)

	now := time.Now()
	for i := range recipients {
		notification := &models.Notification{
			RecipientID:     recipients[i].ID,
			RecipientRole:   recipients[i].Role,
			SenderID:        &actorID,
			SenderRole:      actor.Role,
			Type:            "payment-received",
			Message:         message,
			RelatedEntity:   constvars.MongoCollectionPayments,
			RelatedEntityID: &payment.ID,
			Status:          constvars.NotificationStatusUnread,
			TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		created, err := uc.NotificationRepository.CreateNotification(ctx, notification)
		if err != nil {
			uc.Log.Warn("settlementUsecase.notifySettlement error creating notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecipientIDKey, recipients[i].ID.Hex()),
				zap.Error(err),
			)
			continue
		}
		if err := uc.NotificationPublisher.PublishNotification(ctx, created); err != nil {
			uc.Log.Warn("settlementUsecase.notifySettlement error publishing notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingNotificationIDKey, created.ID.Hex()),
				zap.Error(err),
			)
		}
	}
}
