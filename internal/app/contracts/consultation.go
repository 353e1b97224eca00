package contracts

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/dto/requests"
)

type ConsultationRepository interface {
	CreateConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error)
}

type MedicalHistoryRepository interface {
	CreateMedicalHistory(ctx context.Context, history *models.MedicalHistory) (*models.MedicalHistory, error)
}

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, request *requests.CreateConsultation, actor models.Actor, meta RequestMetadata) (*models.Consultation, error)
	ListConsultationsByPatient(ctx context.Context, patientID string) ([]models.Consultation, error)
}
