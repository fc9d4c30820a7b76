package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type FoodItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Calories    int                `json:"calories" bson:"calories"`
	Protein     string             `json:"protein" bson:"protein"`
	Image       string             `json:"image" bson:"image"`
	Category    string             `json:"category" bson:"category"`
}
