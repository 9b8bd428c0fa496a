package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Setting struct {
	ID         primitive.ObjectID `bson:"_id"`
	Key        string             `json:"key" bson:"key" validate:"required"`
	Value      string             `json:"value" bson:"value"`
	Updated_at time.Time          `json:"updated_at" bson:"updated_at"`
}
