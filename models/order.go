package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Orders are append-only from this client: once written the
// document is never updated here.
const (
	OrderStatusPending = "pending"
)

type CustomerDetails struct {
	FullName            string `json:"fullName" bson:"fullName"`
	PhoneNumber         string `json:"phoneNumber" bson:"phoneNumber"`
	EmailAddress        string `json:"emailAddress" bson:"emailAddress"`
	DeliveryAddress     string `json:"deliveryAddress" bson:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
}

type OrderItem struct {
	ID       primitive.ObjectID `json:"id" bson:"id"`
	Name     string             `json:"name" bson:"name"`
	Price    float64            `json:"price" bson:"price"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerDetails CustomerDetails    `json:"customerDetails" bson:"customerDetails"`
	Items           []OrderItem        `json:"items" bson:"items"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	Tax             float64            `json:"tax" bson:"tax"`
	Total           float64            `json:"total" bson:"total"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UserID          string             `json:"userId" bson:"userId"`
}
