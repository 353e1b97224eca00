package serviceorders

import (
	"context"
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

type ServiceOrderController struct {
	Log                 *zap.Logger
	ServiceOrderUsecase contracts.ServiceOrderUsecase
}

func NewServiceOrderController(logger *zap.Logger, serviceOrderUsecase contracts.ServiceOrderUsecase) *ServiceOrderController {
	return &ServiceOrderController{
		Log:                 logger,
		ServiceOrderUsecase: serviceOrderUsecase,
	}
}

func (ctrl *ServiceOrderController) CreateServiceOrder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateServiceOrder)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateServiceOrderRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	actor := utils.ActorFromRequest(r)
	meta := utils.RequestMetadataFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceOrderUsecase.CreateServiceOrder(ctx, request, actor, meta)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateServiceOrderSuccessMessage, result)
}

func (ctrl *ServiceOrderController) GetServiceOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceOrderUsecase.GetServiceOrderByID(ctx, orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceOrderSuccessMessage, result)
}

func (ctrl *ServiceOrderController) ListServiceOrdersByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceOrderUsecase.ListServiceOrdersByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceOrdersSuccessMessage, result)
}

func (ctrl *ServiceOrderController) CancelServiceOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	actor := utils.ActorFromRequest(r)
	meta := utils.RequestMetadataFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceOrderUsecase.CancelServiceOrder(ctx, orderID, actor, meta)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelServiceOrderSuccessMessage, result)
}
