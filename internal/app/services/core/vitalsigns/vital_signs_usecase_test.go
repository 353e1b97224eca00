package vitalsigns

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeVitalSignsRepo struct {
	created *models.VitalSigns
}

func (f *fakeVitalSignsRepo) CreateVitalSigns(ctx context.Context, vitalSigns *models.VitalSigns) (*models.VitalSigns, error) {
	vitalSigns.ID = primitive.NewObjectID()
	f.created = vitalSigns
	return vitalSigns, nil
}

func (f *fakeVitalSignsRepo) FindByID(ctx context.Context, vitalSignsID string) (*models.VitalSigns, error) {
	return f.created, nil
}

func (f *fakeVitalSignsRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.VitalSigns, error) {
	return nil, nil
}

type fakePatientRepo struct {
	patient *models.Patient
}

func (f *fakePatientRepo) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return patient, nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepo) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepo) UpdateLastVisit(ctx context.Context, patientID string, lastVisit time.Time) error {
	return nil
}

func newVitalSignsFixture() (*vitalSignsUsecase, *models.Patient) {
	patient := &models.Patient{ID: primitive.NewObjectID()}
	usecase := &vitalSignsUsecase{
		VitalSignsRepository: &fakeVitalSignsRepo{},
		PatientRepository:    &fakePatientRepo{patient: patient},
		Log:                  zap.NewNop(),
	}
	return usecase, patient
}

func TestCreateVitalSigns(t *testing.T) {
	actor := models.Actor{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleNurse}

	t.Run("Only Sent Measurements Are Stored", func(t *testing.T) {
		usecase, _ := newVitalSignsFixture()
		request := &requests.CreateVitalSigns{
			PatientID:   primitive.NewObjectID().Hex(),
			Temperature: &requests.MeasurementRequest{Value: 37.2},
		}

		result, err := usecase.CreateVitalSigns(context.Background(), request, actor)

		assert.NoError(t, err)
		assert.NotNil(t, result.Temperature)
		assert.Nil(t, result.HeartRate)
		assert.Nil(t, result.BloodPressure)
		assert.Nil(t, result.BloodSugar)
		assert.Nil(t, result.BMI)
	})

	t.Run("Default Units Applied When Omitted", func(t *testing.T) {
		usecase, _ := newVitalSignsFixture()
		request := &requests.CreateVitalSigns{
			PatientID:     primitive.NewObjectID().Hex(),
			Temperature:   &requests.MeasurementRequest{Value: 37.2},
			HeartRate:     &requests.MeasurementRequest{Value: 72},
			BloodPressure: &requests.BloodPressureRequest{Systolic: 120, Diastolic: 80},
			BloodSugar:    &requests.BloodSugarRequest{Value: 95, Fasting: true},
		}

		result, err := usecase.CreateVitalSigns(context.Background(), request, actor)

		assert.NoError(t, err)
		assert.Equal(t, UnitCelsius, result.Temperature.Unit)
		assert.Equal(t, UnitBPM, result.HeartRate.Unit)
		assert.Equal(t, UnitMmHg, result.BloodPressure.Unit)
		assert.Equal(t, UnitMgPerDl, result.BloodSugar.Unit)
	})

	t.Run("Caller Unit Wins Over Default", func(t *testing.T) {
		usecase, _ := newVitalSignsFixture()
		request := &requests.CreateVitalSigns{
			PatientID:   primitive.NewObjectID().Hex(),
			Temperature: &requests.MeasurementRequest{Value: 98.9, Unit: "°F"},
		}

		result, err := usecase.CreateVitalSigns(context.Background(), request, actor)

		assert.NoError(t, err)
		assert.Equal(t, "°F", result.Temperature.Unit)
	})

	t.Run("BMI Derived From Height And Weight", func(t *testing.T) {
		usecase, _ := newVitalSignsFixture()
		request := &requests.CreateVitalSigns{
			PatientID: primitive.NewObjectID().Hex(),
			Height:    &requests.MeasurementRequest{Value: 170},
			Weight:    &requests.MeasurementRequest{Value: 65},
		}

		result, err := usecase.CreateVitalSigns(context.Background(), request, actor)

		assert.NoError(t, err)
		assert.NotNil(t, result.BMI)
		assert.Equal(t, 22.5, result.BMI.Value)
		assert.Equal(t, BMINormal, result.BMI.Classification)
	})

	t.Run("BMI Missing Without Both Inputs", func(t *testing.T) {
		usecase, _ := newVitalSignsFixture()
		request := &requests.CreateVitalSigns{
			PatientID: primitive.NewObjectID().Hex(),
			Weight:    &requests.MeasurementRequest{Value: 65},
		}

		result, err := usecase.CreateVitalSigns(context.Background(), request, actor)

		assert.NoError(t, err)
		assert.Nil(t, result.BMI)
	})

	t.Run("Unknown Patient Rejected", func(t *testing.T) {
		usecase, _ := newVitalSignsFixture()
		usecase.PatientRepository = &fakePatientRepo{}

		_, err := usecase.CreateVitalSigns(context.Background(), &requests.CreateVitalSigns{
			PatientID: primitive.NewObjectID().Hex(),
		}, actor)

		assert.Error(t, err)
	})
}

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name           string
		heightCm       float64
		weightKg       float64
		expectedValue  float64
		classification string
	}{
		{"Underweight", 180, 55, 17.0, BMIUnderweight},
		{"Normal", 170, 65, 22.5, BMINormal},
		{"Overweight", 170, 80, 27.7, BMIOverweight},
		{"Obese", 160, 90, 35.2, BMIObese},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bmi := computeBMI(
				&models.Measurement{Value: tc.heightCm, Unit: UnitCentimeter},
				&models.Measurement{Value: tc.weightKg, Unit: UnitKilogram},
			)

			assert.NotNil(t, bmi)
			assert.Equal(t, tc.expectedValue, bmi.Value)
			assert.Equal(t, tc.classification, bmi.Classification)
		})
	}

	t.Run("Non Positive Height Yields Nothing", func(t *testing.T) {
		bmi := computeBMI(
			&models.Measurement{Value: 0, Unit: UnitCentimeter},
			&models.Measurement{Value: 65, Unit: UnitKilogram},
		)
		assert.Nil(t, bmi)
	})
}
