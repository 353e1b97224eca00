package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/requests"
)

type VitalSignsRepository interface {
	CreateVitalSigns(ctx context.Context, vitalSigns *models.VitalSigns) (*models.VitalSigns, error)
	FindByID(ctx context.Context, vitalSignsID string) (*models.VitalSigns, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.VitalSigns, error)
}

type VitalSignsUsecase interface {
	CreateVitalSigns(ctx context.Context, request *requests.CreateVitalSigns, actor models.Actor) (*models.VitalSigns, error)
	GetVitalSignsByID(ctx context.Context, vitalSignsID string) (*models.VitalSigns, error)
	ListVitalSignsByPatient(ctx context.Context, patientID string) ([]models.VitalSigns, error)
}
