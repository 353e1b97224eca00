package consultations

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

type consultationUsecase struct {
	ConsultationRepository   contracts.ConsultationRepository
	MedicalHistoryRepository contracts.MedicalHistoryRepository
	PatientRepository        contracts.PatientRepository
	AuditLogRepository       contracts.AuditLogRepository
	Log                      *zap.Logger
}

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	medicalHistoryRepository contracts.MedicalHistoryRepository,
	patientRepository contracts.PatientRepository,
	auditLogRepository contracts.AuditLogRepository,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		instance := &consultationUsecase{
			ConsultationRepository:   consultationRepository,
			MedicalHistoryRepository: medicalHistoryRepository,
			PatientRepository:        patientRepository,
			AuditLogRepository:       auditLogRepository,
			Log:                      logger,
		}
		consultationUsecaseInstance = instance
	})
	return consultationUsecaseInstance
}

func (uc *consultationUsecase) CreateConsultation(ctx context.Context, request *requests.CreateConsultation, actor models.Actor, meta contracts.RequestMetadata) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.CreateConsultation called",
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

	doctorID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	consultation := &models.Consultation{
		PatientID: patient.ID,
		DoctorID:  doctorID,
		Notes:     request.Notes,
		Diagnosis: request.Diagnosis,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.ConsultationRepository.CreateConsultation(ctx, consultation)
	if err != nil {
		return nil, err
	}

	// The consultation is the visit, so the patient's last visit moves with
	// it. A failed update does not undo the consultation.
	if err := uc.PatientRepository.UpdateLastVisit(ctx, request.PatientID, now); err != nil {
		uc.Log.Warn("consultationUsecase.CreateConsultation error updating last visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
	}

	if request.CreateMedicalHistory {
		history := &models.MedicalHistory{
			PatientID: patient.ID,
			DoctorID:  doctorID,
			Diagnosis: request.Diagnosis,
			Symptoms:  request.Symptoms,
			Notes:     request.Notes,
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		if _, err := uc.MedicalHistoryRepository.CreateMedicalHistory(ctx, history); err != nil {
			uc.Log.Warn("consultationUsecase.CreateConsultation error creating medical history",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, request.PatientID),
				zap.Error(err),
			)
		}
	}

	entry := &models.AuditLog{
		Action:    constvars.AuditActionCreate,
		Entity:    constvars.MongoCollectionConsultations,
		EntityID:  &created.ID,
		UserID:    doctorID,
		UserRole:  actor.Role,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: now,
	}
	if err := uc.AuditLogRepository.Append(ctx, entry); err != nil {
		uc.Log.Warn("consultationUsecase.CreateConsultation error writing audit entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("consultationUsecase.CreateConsultation completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, created.ID.Hex()),
	)
	return created, nil
}

func (uc *consultationUsecase) ListConsultationsByPatient(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return uc.ConsultationRepository.FindByPatientID(ctx, patientID)
}
