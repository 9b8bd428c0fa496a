package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Ingredient struct {
	ID            primitive.ObjectID `bson:"_id"`
	Ingredient_id string             `json:"ingredient_id" bson:"ingredient_id"`
	Name          *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Unit          *string            `json:"unit" bson:"unit" validate:"required"`
	Stock_qty     float64            `json:"stock_qty" bson:"stock_qty"`
	Min_stock     float64            `json:"min_stock" bson:"min_stock"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
	Updated_at    time.Time          `json:"updated_at" bson:"updated_at"`
}

// StockMovement is one ledger row for an ingredient. The movement kind is
// stored under the single canonical column movement_type.
type StockMovement struct {
	ID            primitive.ObjectID `bson:"_id"`
	Movement_id   string             `json:"movement_id" bson:"movement_id"`
	Ingredient_id string             `json:"ingredient_id" bson:"ingredient_id" validate:"required"`
	Movement_type string             `json:"movement_type" bson:"movement_type" validate:"required,eq=in|eq=out|eq=adjust"`
	Qty           float64            `json:"qty" bson:"qty" validate:"required"`
	Note          *string            `json:"note" bson:"note"`
	Created_by    *string            `json:"created_by" bson:"created_by"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
}
