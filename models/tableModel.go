package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Table struct {
	ID               primitive.ObjectID `bson:"_id"`
	Table_id         string             `json:"table_id" bson:"table_id"`
	Table_number     *string            `json:"table_number" bson:"table_number" validate:"required"`
	Number_of_guests *int               `json:"number_of_guests" bson:"number_of_guests"`
	Is_active        bool               `json:"is_active" bson:"is_active"`
	Created_at       time.Time          `json:"created_at" bson:"created_at"`
	Updated_at       time.Time          `json:"updated_at" bson:"updated_at"`
}
