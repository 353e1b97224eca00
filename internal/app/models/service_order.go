package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem captures a priced service line at order time. Prices are
// immutable once a billing ledger has been generated from them.
type OrderItem struct {
	Code        string  `json:"code,omitempty" bson:"code,omitempty"`
	Description string  `json:"description" bson:"description"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

func (i OrderItem) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// ServiceOrder is a requested clinical service (lab order or procedure,
// discriminated by Kind) gated on payment.
//
// Status paid implies BillingID is unset and PaymentID references the
// settling payment record.
type ServiceOrder struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Kind          string              `json:"kind" bson:"kind"`
	PatientID     primitive.ObjectID  `json:"patientId" bson:"patientId"`
	OrderedByID   primitive.ObjectID  `json:"orderedById" bson:"orderedById"`
	OrderedByRole string              `json:"orderedByRole" bson:"orderedByRole"`
	Items         []OrderItem         `json:"items" bson:"items"`
	Status        string              `json:"status" bson:"status"`
	PaymentStatus string              `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	BillingID     *primitive.ObjectID `json:"billingId,omitempty" bson:"billingId,omitempty"`
	PaymentID     *primitive.ObjectID `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel     `bson:",inline"`
}

func (o *ServiceOrder) ItemsSubtotal() float64 {
	var subtotal float64
	for _, item := range o.Items {
		subtotal += item.Total()
	}
	return subtotal
}
