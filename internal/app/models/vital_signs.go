package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Measurement struct {
	Value float64 `json:"value" bson:"value"`
	Unit  string  `json:"unit" bson:"unit"`
}

type BloodPressure struct {
	Systolic  int    `json:"systolic" bson:"systolic"`
	Diastolic int    `json:"diastolic" bson:"diastolic"`
	Unit      string `json:"unit" bson:"unit"`
}

type BloodSugar struct {
	Value   float64 `json:"value" bson:"value"`
	Unit    string  `json:"unit" bson:"unit"`
	Fasting bool    `json:"fasting" bson:"fasting"`
}

type BodyMassIndex struct {
	Value          float64 `json:"value" bson:"value"`
	Classification string  `json:"classification" bson:"classification"`
}

// VitalSigns stores only the measurements that were actually taken.
type VitalSigns struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID        primitive.ObjectID `json:"patientId" bson:"patientId"`
	RecordedByID     primitive.ObjectID `json:"recordedById" bson:"recordedById"`
	RecordedByRole   string             `json:"recordedByRole" bson:"recordedByRole"`
	Temperature      *Measurement       `json:"temperature,omitempty" bson:"temperature,omitempty"`
	HeartRate        *Measurement       `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	BloodPressure    *BloodPressure     `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	RespiratoryRate  *Measurement       `json:"respiratoryRate,omitempty" bson:"respiratoryRate,omitempty"`
	OxygenSaturation *Measurement       `json:"oxygenSaturation,omitempty" bson:"oxygenSaturation,omitempty"`
	Height           *Measurement       `json:"height,omitempty" bson:"height,omitempty"`
	Weight           *Measurement       `json:"weight,omitempty" bson:"weight,omitempty"`
	BloodSugar       *BloodSugar        `json:"bloodSugar,omitempty" bson:"bloodSugar,omitempty"`
	BMI              *BodyMassIndex     `json:"bmi,omitempty" bson:"bmi,omitempty"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel        `bson:",inline"`
}
