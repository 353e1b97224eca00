package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an ephemeral, best-effort message to one user. Its loss
// never rolls back the workflow that produced it.
type Notification struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	RecipientID     primitive.ObjectID  `json:"recipientId" bson:"recipientId"`
	RecipientRole   string              `json:"recipientRole" bson:"recipientRole"`
	SenderID        *primitive.ObjectID `json:"senderId,omitempty" bson:"senderId,omitempty"`
	SenderRole      string              `json:"senderRole,omitempty" bson:"senderRole,omitempty"`
	Type            string              `json:"type" bson:"type"`
	Message         string              `json:"message" bson:"message"`
	RelatedEntity   string              `json:"relatedEntity,omitempty" bson:"relatedEntity,omitempty"`
	RelatedEntityID *primitive.ObjectID `json:"relatedEntityId,omitempty" bson:"relatedEntityId,omitempty"`
	Status          string              `json:"status" bson:"status"`
	ReadAt          *time.Time          `json:"readAt,omitempty" bson:"readAt,omitempty"`
	TimeModel       `bson:",inline"`
}
