package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type BillingItem struct {
	Description string  `json:"description" bson:"description"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	Total       float64 `json:"total" bson:"total"`
}

// Billing is an itemized charge ledger for one service order. The record is
// retained for audit after settlement even though the order's back-reference
// to it is removed.
type Billing struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	PatientID      primitive.ObjectID  `json:"patientId" bson:"patientId"`
	Items          []BillingItem       `json:"items" bson:"items"`
	Subtotal       float64             `json:"subtotal" bson:"subtotal"`
	Total          float64             `json:"total" bson:"total"`
	Status         string              `json:"status" bson:"status"`
	PaymentType    string              `json:"paymentType" bson:"paymentType"`
	ServiceOrderID *primitive.ObjectID `json:"serviceOrderId,omitempty" bson:"serviceOrderId,omitempty"`
	PaymentID      *primitive.ObjectID `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	CreatedByID    primitive.ObjectID  `json:"createdById" bson:"createdById"`
	CreatedByRole  string              `json:"createdByRole" bson:"createdByRole"`
	TimeModel      `bson:",inline"`
}
