package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditChanges struct {
	From      string              `json:"from,omitempty" bson:"from,omitempty"`
	To        string              `json:"to,omitempty" bson:"to,omitempty"`
	PaymentID *primitive.ObjectID `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Amount    float64             `json:"amount,omitempty" bson:"amount,omitempty"`
}

// AuditLog is append-only. Entries are never mutated or deleted.
type AuditLog struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Action    string              `json:"action" bson:"action"`
	Entity    string              `json:"entity" bson:"entity"`
	EntityID  *primitive.ObjectID `json:"entityId,omitempty" bson:"entityId,omitempty"`
	UserID    primitive.ObjectID  `json:"userId" bson:"userId"`
	UserRole  string              `json:"userRole" bson:"userRole"`
	Changes   *AuditChanges       `json:"changes,omitempty" bson:"changes,omitempty"`
	Metadata  map[string]string   `json:"metadata,omitempty" bson:"metadata,omitempty"`
	IPAddress string              `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent string              `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}
