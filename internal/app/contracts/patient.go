package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/requests"
	"time"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error)
	UpdateLastVisit(ctx context.Context, patientID string, lastVisit time.Time) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient, actor models.Actor) (*models.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	ListPatients(ctx context.Context, page, pageSize int) ([]models.Patient, int, error)
}
