package serviceorders

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type serviceOrderUsecase struct {
	ServiceOrderRepository contracts.ServiceOrderRepository
	PatientRepository      contracts.PatientRepository
	AuditLogRepository     contracts.AuditLogRepository
	Log                    *zap.Logger
}

var (
	serviceOrderUsecaseInstance contracts.ServiceOrderUsecase
	onceServiceOrderUsecase     sync.Once
)

func NewServiceOrderUsecase(
	serviceOrderRepository contracts.ServiceOrderRepository,
	patientRepository contracts.PatientRepository,
	auditLogRepository contracts.AuditLogRepository,
	logger *zap.Logger,
) contracts.ServiceOrderUsecase {
	onceServiceOrderUsecase.Do(func() {
		instance := &serviceOrderUsecase{
			ServiceOrderRepository: serviceOrderRepository,
			PatientRepository:      patientRepository,
			AuditLogRepository:     auditLogRepository,
			Log:                    logger,
		}
		serviceOrderUsecaseInstance = instance
	})
	return serviceOrderUsecaseInstance
}

func (uc *serviceOrderUsecase) CreateServiceOrder(ctx context.Context, request *requests.CreateServiceOrder, actor models.Actor, meta contracts.RequestMetadata) (*models.ServiceOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceOrderUsecase.CreateServiceOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, actor.ID),
		zap.String(constvars.LoggingOrderKindKey, request.Kind),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	actorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	items := make([]models.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, models.OrderItem{
			Code:        item.Code,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	now := time.Now()
	order := &models.ServiceOrder{
		Kind:          request.Kind,
		PatientID:     patient.ID,
		OrderedByID:   actorID,
		OrderedByRole: actor.Role,
		Items:         items,
		Status:        constvars.OrderStatusPendingPayment,
		Notes:         request.Notes,
		TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.ServiceOrderRepository.CreateServiceOrder(ctx, order)
	if err != nil {
		uc.Log.Error("serviceOrderUsecase.CreateServiceOrder error creating order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.appendAudit(ctx, constvars.AuditActionCreate, created.ID, actor, meta, nil)

	uc.Log.Info("serviceOrderUsecase.CreateServiceOrder completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, created.ID.Hex()),
	)
	return created, nil
}

func (uc *serviceOrderUsecase) GetServiceOrderByID(ctx context.Context, orderID string) (*models.ServiceOrder, error) {
	order, err := uc.ServiceOrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrServiceOrderNotFound(nil)
	}
	return order, nil
}

func (uc *serviceOrderUsecase) ListServiceOrdersByPatient(ctx context.Context, patientID string) ([]models.ServiceOrder, error) {
	return uc.ServiceOrderRepository.FindByPatientID(ctx, patientID)
}

func (uc *serviceOrderUsecase) CancelServiceOrder(ctx context.Context, orderID string, actor models.Actor, meta contracts.RequestMetadata) (*models.ServiceOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceOrderUsecase.CancelServiceOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	order, err := uc.ServiceOrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrServiceOrderNotFound(nil)
	}

	matched, err := uc.ServiceOrderRepository.CancelOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrOrderAlreadyCancelled(nil)
	}

	uc.appendAudit(ctx, constvars.AuditActionCancel, order.ID, actor, meta, &models.AuditChanges{
		From: order.Status,
		To:   constvars.OrderStatusCancelled,
	})

	return uc.GetServiceOrderByID(ctx, orderID)
}

// appendAudit is best-effort: audit write failures are logged and swallowed.
func (uc *serviceOrderUsecase) appendAudit(ctx context.Context, action string, orderID primitive.ObjectID, actor models.Actor, meta contracts.RequestMetadata, changes *models.AuditChanges) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	actorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		uc.Log.Warn("serviceOrderUsecase.appendAudit actor id is not an object id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	entry := &models.AuditLog{
		Action:    action,
		Entity:    constvars.MongoCollectionServiceOrders,
		EntityID:  &orderID,
		UserID:    actorID,
		UserRole:  actor.Role,
		Changes:   changes,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := uc.AuditLogRepository.Append(ctx, entry); err != nil {
		uc.Log.Warn("serviceOrderUsecase.appendAudit error writing audit entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
