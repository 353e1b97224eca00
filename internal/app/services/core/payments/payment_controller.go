package payments

import (
	"context"
	"emr-service/internal/app/config"
	"emr-service/internal/app/contracts"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/exceptions"
	"emr-service/internal/pkg/utils"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log               *zap.Logger
	SettlementUsecase contracts.SettlementUsecase
	InternalConfig    *config.InternalConfig
}

func NewPaymentController(logger *zap.Logger, settlementUsecase contracts.SettlementUsecase, internalConfig *config.InternalConfig) *PaymentController {
	return &PaymentController{
		Log:               logger,
		SettlementUsecase: settlementUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *PaymentController) SettlePayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SettlePayment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ServiceOrderID = chi.URLParam(r, "orderId")

	utils.SanitizeSettlePaymentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	actor := utils.ActorFromRequest(r)
	meta := utils.RequestMetadataFromRequest(r)

	timeout := time.Duration(ctrl.InternalConfig.Settlement.RequestTimeoutSecond) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	result, err := ctrl.SettlementUsecase.SettlePayment(ctx, request, actor, meta)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Settlement is a state transition on an existing order, not a resource
	// creation, so it answers 200 rather than 201.
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SettlePaymentSuccessMessage, result)
}

func (ctrl *PaymentController) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SettlementUsecase.GetPaymentByID(ctx, paymentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccessMessage, result)
}

func (ctrl *PaymentController) GetPaymentByServiceOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SettlementUsecase.GetPaymentByServiceOrderID(ctx, orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccessMessage, result)
}
