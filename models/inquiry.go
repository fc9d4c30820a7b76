package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const InquiryStatusNew = "new"

type Inquiry struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	UserID    string             `json:"userId,omitempty" bson:"userId,omitempty"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
