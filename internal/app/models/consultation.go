package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Consultation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorID  primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Diagnosis string             `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	TimeModel `bson:",inline"`
}

type MedicalHistory struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorID  primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	Diagnosis string             `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Symptoms  []string           `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}
