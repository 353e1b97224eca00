package requests

type MeasurementRequest struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type BloodPressureRequest struct {
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Unit      string `json:"unit"`
}

type BloodSugarRequest struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Fasting bool    `json:"fasting"`
}

// Measurements are all optional. Only fields the caller actually sends are
// persisted, with default units filled in when omitted.
type CreateVitalSigns struct {
	PatientID        string                `json:"patientId" validate:"required"`
	Temperature      *MeasurementRequest   `json:"temperature"`
	HeartRate        *MeasurementRequest   `json:"heartRate"`
	BloodPressure    *BloodPressureRequest `json:"bloodPressure"`
	RespiratoryRate  *MeasurementRequest   `json:"respiratoryRate"`
	OxygenSaturation *MeasurementRequest   `json:"oxygenSaturation"`
	Height           *MeasurementRequest   `json:"height"`
	Weight           *MeasurementRequest   `json:"weight"`
	BloodSugar       *BloodSugarRequest    `json:"bloodSugar"`
	Notes            string                `json:"notes"`
}
