package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID             primitive.ObjectID `bson:"_id"`
	Order_id       string             `json:"order_id" bson:"order_id"`
	Created_at     time.Time          `json:"created_at" bson:"created_at"`
	Updated_at     time.Time          `json:"updated_at" bson:"updated_at"`
	Source         string             `json:"source" bson:"source" validate:"required,eq=web|eq=pos"`
	Service_type   string             `json:"service_type" bson:"service_type" validate:"required,eq=dine_in|eq=takeaway"`
	Table_no       *string            `json:"table_no" bson:"table_no"`
	Status         string             `json:"status" bson:"status" validate:"required"`
	Guest_name     *string            `json:"guest_name" bson:"guest_name"`
	Contact        *string            `json:"contact" bson:"contact"`
	Payment_method string             `json:"payment_method" bson:"payment_method" validate:"required,eq=cash|eq=transfer|eq=ewallet|eq=qris"`
	Note           *string            `json:"note" bson:"note"`
	Payment_code   string             `json:"payment_code" bson:"payment_code"`
	Created_by     *string            `json:"created_by" bson:"created_by"`
	Proof_url      *string            `json:"proof_url" bson:"proof_url"`
	Total_amount   float64            `json:"total_amount" bson:"total_amount"`
}
