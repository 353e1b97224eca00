package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is an immutable record of funds received against a billing ledger.
// No update or delete operation exists for it.
type Payment struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReceiptNumber    string             `json:"receiptNumber" bson:"receiptNumber"`
	BillingID        primitive.ObjectID `json:"billingId" bson:"billingId"`
	PatientID        primitive.ObjectID `json:"patientId" bson:"patientId"`
	ServiceOrderID   primitive.ObjectID `json:"serviceOrderId" bson:"serviceOrderId"`
	ServiceOrderKind string             `json:"serviceOrderKind" bson:"serviceOrderKind"`
	Amount           float64            `json:"amount" bson:"amount"`
	PaymentMethod    string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentType      string             `json:"paymentType" bson:"paymentType"`
	Status           string             `json:"status" bson:"status"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
	ProcessedByID    primitive.ObjectID `json:"processedById" bson:"processedById"`
	ProcessedByRole  string             `json:"processedByRole" bson:"processedByRole"`
	TimeModel        `bson:",inline"`
}
