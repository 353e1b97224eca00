package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	DateOfBirth string             `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	PhoneNumber string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	LastVisit   *time.Time         `json:"lastVisit,omitempty" bson:"lastVisit,omitempty"`
	TimeModel   `bson:",inline"`
}
