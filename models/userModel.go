package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Password      *string            `json:"password" bson:"password" validate:"required,min=6"`
	Email         *string            `json:"email" bson:"email" validate:"email,required"`
	Phone         *string            `json:"phone" bson:"phone"`
	Role          *string            `json:"role" bson:"role" validate:"required,eq=admin|eq=manager|eq=cashier|eq=kitchen|eq=viewer"`
	Token         *string            `json:"token" bson:"token"`
	Refresh_Token *string            `json:"refresh_token" bson:"refresh_token"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
	Updated_at    time.Time          `json:"updated_at" bson:"updated_at"`
	User_id       string             `json:"user_id" bson:"user_id"`
}
