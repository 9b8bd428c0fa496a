package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Menu struct {
	ID           primitive.ObjectID `bson:"_id"`
	Menu_id      string             `json:"menu_id" bson:"menu_id"`
	Name         *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Price        *float64           `json:"price" bson:"price" validate:"required,min=0"`
	Category_id  *string            `json:"category_id" bson:"category_id"`
	Photo_url    *string            `json:"photo_url" bson:"photo_url"`
	Is_available bool               `json:"is_available" bson:"is_available"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
}

type MenuCategory struct {
	ID          primitive.ObjectID `bson:"_id"`
	Category_id string             `json:"category_id" bson:"category_id"`
	Name        *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Created_at  time.Time          `json:"created_at" bson:"created_at"`
	Updated_at  time.Time          `json:"updated_at" bson:"updated_at"`
}
