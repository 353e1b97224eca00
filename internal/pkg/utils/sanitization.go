package utils

import (
	"emr-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeCreateServiceOrderRequest(request *requests.CreateServiceOrder) {
	request.Kind = strings.ToLower(strings.TrimSpace(request.Kind))
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.Notes = strings.TrimSpace(request.Notes)
	for i := range request.Items {
		request.Items[i].Code = strings.TrimSpace(request.Items[i].Code)
		request.Items[i].Description = strings.TrimSpace(request.Items[i].Description)
	}
}

func SanitizeSettlePaymentRequest(request *requests.SettlePayment) {
	request.PaymentMethod = strings.ToLower(strings.TrimSpace(request.PaymentMethod))
	request.Notes = strings.TrimSpace(request.Notes)
}

func SanitizeCreateNotificationRequest(request *requests.CreateNotification) {
	request.Recipient.ID = strings.TrimSpace(request.Recipient.ID)
	request.Recipient.Role = strings.ToLower(strings.TrimSpace(request.Recipient.Role))
	request.Type = strings.TrimSpace(request.Type)
	request.Message = strings.TrimSpace(request.Message)
	request.RelatedEntity = strings.TrimSpace(request.RelatedEntity)
	request.RelatedEntityID = strings.TrimSpace(request.RelatedEntityID)
}

func SanitizeBroadcastNotificationRequest(request *requests.BroadcastNotification) {
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
	request.Type = strings.TrimSpace(request.Type)
	request.Message = strings.TrimSpace(request.Message)
	request.RelatedEntity = strings.TrimSpace(request.RelatedEntity)
	request.RelatedEntityID = strings.TrimSpace(request.RelatedEntityID)
}

func SanitizeCreateConsultationRequest(request *requests.CreateConsultation) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.Notes = strings.TrimSpace(request.Notes)
	request.Diagnosis = strings.TrimSpace(request.Diagnosis)
	for i := range request.Symptoms {
		request.Symptoms[i] = strings.TrimSpace(request.Symptoms[i])
	}
}

func SanitizeCreateVitalSignsRequest(request *requests.CreateVitalSigns) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.Notes = strings.TrimSpace(request.Notes)
}
