package vitalsigns

import (
	"context"
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"emr-service/internal/pkg/exceptions"
	"math"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Default units applied when the caller omits them.
const (
	UnitCelsius       = "°C"
	UnitBPM           = "bpm"
	UnitMmHg          = "mmHg"
	UnitBreathsPerMin = "breaths/min"
	UnitPercent       = "%"
	UnitCentimeter    = "cm"
	UnitKilogram      = "kg"
	UnitMgPerDl       = "mg/dL"
)

const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

type vitalSignsUsecase struct {
	VitalSignsRepository contracts.VitalSignsRepository
	PatientRepository    contracts.PatientRepository
	Log                  *zap.Logger
}

var (
	vitalSignsUsecaseInstance contracts.VitalSignsUsecase
	onceVitalSignsUsecase     sync.Once
)

func NewVitalSignsUsecase(
	vitalSignsRepository contracts.VitalSignsRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.VitalSignsUsecase {
	onceVitalSignsUsecase.Do(func() {
		instance := &vitalSignsUsecase{
			VitalSignsRepository: vitalSignsRepository,
			PatientRepository:    patientRepository,
			Log:                  logger,
		}
		vitalSignsUsecaseInstance = instance
	})
	return vitalSignsUsecaseInstance
}

func (uc *vitalSignsUsecase) CreateVitalSigns(ctx context.Context, request *requests.CreateVitalSigns, actor models.Actor) (*models.VitalSigns, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vitalSignsUsecase.CreateVitalSigns called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingActorIDKey, actor.ID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	recordedByID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	vitalSigns := &models.VitalSigns{
		PatientID:        patient.ID,
		RecordedByID:     recordedByID,
		RecordedByRole:   actor.Role,
		Temperature:      measurement(request.Temperature, UnitCelsius),
		HeartRate:        measurement(request.HeartRate, UnitBPM),
		RespiratoryRate:  measurement(request.RespiratoryRate, UnitBreathsPerMin),
		OxygenSaturation: measurement(request.OxygenSaturation, UnitPercent),
		Height:           measurement(request.Height, UnitCentimeter),
		Weight:           measurement(request.Weight, UnitKilogram),
		Notes:            request.Notes,
		TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if request.BloodPressure != nil {
		unit := request.BloodPressure.Unit
		if unit == "" {
			unit = UnitMmHg
		}
		vitalSigns.BloodPressure = &models.BloodPressure{
			Systolic:  request.BloodPressure.Systolic,
			Diastolic: request.BloodPressure.Diastolic,
			Unit:      unit,
		}
	}
	if request.BloodSugar != nil {
		unit := request.BloodSugar.Unit
		if unit == "" {
			unit = UnitMgPerDl
		}
		vitalSigns.BloodSugar = &models.BloodSugar{
			Value:   request.BloodSugar.Value,
			Unit:    unit,
			Fasting: request.BloodSugar.Fasting,
		}
	}

	vitalSigns.BMI = computeBMI(vitalSigns.Height, vitalSigns.Weight)

	created, err := uc.VitalSignsRepository.CreateVitalSigns(ctx, vitalSigns)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("vitalSignsUsecase.CreateVitalSigns completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVitalSignsIDKey, created.ID.Hex()),
	)
	return created, nil
}

func (uc *vitalSignsUsecase) GetVitalSignsByID(ctx context.Context, vitalSignsID string) (*models.VitalSigns, error) {
	vitalSigns, err := uc.VitalSignsRepository.FindByID(ctx, vitalSignsID)
	if err != nil {
		return nil, err
	}
	if vitalSigns == nil {
		return nil, exceptions.ErrVitalSignsNotFound(nil)
	}
	return vitalSigns, nil
}

func (uc *vitalSignsUsecase) ListVitalSignsByPatient(ctx context.Context, patientID string) ([]models.VitalSigns, error) {
	return uc.VitalSignsRepository.FindByPatientID(ctx, patientID)
}

func measurement(request *requests.MeasurementRequest, defaultUnit string) *models.Measurement {
	if request == nil {
		return nil
	}
	unit := request.Unit
	if unit == "" {
		unit = defaultUnit
	}
	return &models.Measurement{Value: request.Value, Unit: unit}
}

// computeBMI derives body mass index from height in centimeters and weight in
// kilograms, rounded to one decimal. Either one missing or non-positive
// yields no BMI.
func computeBMI(height, weight *models.Measurement) *models.BodyMassIndex {
	if height == nil || weight == nil || height.Value <= 0 || weight.Value <= 0 {
		return nil
	}
	heightMeters := height.Value / 100
	value := math.Round(weight.Value/(heightMeters*heightMeters)*10) / 10

	classification := BMIObese
	switch {
	case value < 18.5:
		classification = BMIUnderweight
	case value < 25:
		classification = BMINormal
	case value < 30:
		classification = BMIOverweight
	}

	return &models.BodyMassIndex{Value: value, Classification: classification}
}
