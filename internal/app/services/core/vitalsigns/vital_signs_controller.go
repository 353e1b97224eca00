package vitalsigns

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

type VitalSignsController struct {
	Log               *zap.Logger
	VitalSignsUsecase contracts.VitalSignsUsecase
}

func NewVitalSignsController(logger *zap.Logger, vitalSignsUsecase contracts.VitalSignsUsecase) *VitalSignsController {
	return &VitalSignsController{
		Log:               logger,
		VitalSignsUsecase: vitalSignsUsecase,
	}
}

func (ctrl *VitalSignsController) CreateVitalSigns(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateVitalSigns)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateVitalSignsRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	actor := utils.ActorFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VitalSignsUsecase.CreateVitalSigns(ctx, request, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVitalSignsSuccessMessage, result)
}

func (ctrl *VitalSignsController) GetVitalSignsByID(w http.ResponseWriter, r *http.Request) {
	vitalSignsID := chi.URLParam(r, "vitalSignsId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VitalSignsUsecase.GetVitalSignsByID(ctx, vitalSignsID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVitalSignsSuccessMessage, result)
}

func (ctrl *VitalSignsController) ListVitalSignsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VitalSignsUsecase.ListVitalSignsByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAllVitalSignsSuccessMessage, result)
}
