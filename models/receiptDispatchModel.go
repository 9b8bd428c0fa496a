package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReceiptDispatch queues one receipt send (whatsapp or email) for an order.
// Delivery itself is handled out of band; this row records the request.
type ReceiptDispatch struct {
	ID          primitive.ObjectID `bson:"_id"`
	Dispatch_id string             `json:"dispatch_id" bson:"dispatch_id"`
	Order_id    string             `json:"order_id" bson:"order_id" validate:"required"`
	Channel     string             `json:"channel" bson:"channel" validate:"required,eq=whatsapp|eq=email"`
	Address     string             `json:"address" bson:"address" validate:"required"`
	Queued_at   time.Time          `json:"queued_at" bson:"queued_at"`
	Sent_at     *time.Time         `json:"sent_at" bson:"sent_at"`
}
