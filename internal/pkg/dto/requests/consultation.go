package requests

type CreateConsultation struct {
	PatientID            string   `json:"patientId" validate:"required"`
	Notes                string   `json:"notes"`
	Diagnosis            string   `json:"diagnosis"`
	Symptoms             []string `json:"symptoms"`
	CreateMedicalHistory bool     `json:"createMedicalHistory"`
}
