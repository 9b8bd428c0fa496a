package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemOption is a selected per-item option with its price delta, captured
// at order time together with the unit price snapshot.
type ItemOption struct {
	Option_id   string  `json:"option_id" bson:"option_id"`
	Name        string  `json:"name" bson:"name"`
	Price_delta float64 `json:"price_delta" bson:"price_delta"`
}

type OrderItem struct {
	ID            primitive.ObjectID `bson:"_id"`
	Order_item_id string             `json:"order_item_id" bson:"order_item_id"`
	Order_id      string             `json:"order_id" bson:"order_id"`
	Menu_id       string             `json:"menu_id" bson:"menu_id" validate:"required"`
	Name          string             `json:"name" bson:"name"`
	Qty           int                `json:"qty" bson:"qty" validate:"required,min=1"`
	Unit_price    float64            `json:"unit_price" bson:"unit_price"`
	Note          *string            `json:"note" bson:"note"`
	Options       []ItemOption       `json:"options" bson:"options"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
	Updated_at    time.Time          `json:"updated_at" bson:"updated_at"`
}
