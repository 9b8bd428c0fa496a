package repository

import (
	"context"
	"errors"
	"time"

	"warmindo-pos/helpers"
	"warmindo-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

type IngredientRepository struct {
	ingredients *mongo.Collection
	movements   *mongo.Collection
}

func NewIngredientRepository(db *mongo.Database) *IngredientRepository {
	return &IngredientRepository{
		ingredients: db.Collection("ingredients"),
		movements:   db.Collection("stock_movements"),
	}
}

func (r *IngredientRepository) List(ctx context.Context, lowStockOnly bool) ([]models.Ingredient, error) {
	q := bson.M{}
	if lowStockOnly {
		q["$expr"] = bson.M{"$lte": bson.A{"$stock_qty", "$min_stock"}}
	}
	var list []models.Ingredient
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.ingredients.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
		if err != nil {
			return err
		}
		list = list[:0]
		return cursor.All(ctx, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *IngredientRepository) FindByID(ctx context.Context, ingredientID string) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := helpers.WithRetry(ctx, func() error {
		return r.ingredients.FindOne(ctx, bson.M{"ingredient_id": ingredientID}).Decode(&ing)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepository) Insert(ctx context.Context, ing *models.Ingredient) error {
	_, err := r.ingredients.InsertOne(ctx, ing)
	return err
}

func (r *IngredientRepository) Update(ctx context.Context, ingredientID string, set bson.D) error {
	set = append(set, bson.E{Key: "updated_at", Value: time.Now()})
	res, err := r.ingredients.UpdateOne(ctx, bson.M{"ingredient_id": ingredientID}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

// RecordMovement appends a ledger row and bumps the on-hand quantity in one
// pass. delta is signed: in is positive, out negative, adjust either way.
func (r *IngredientRepository) RecordMovement(ctx context.Context, movement *models.StockMovement, delta float64) error {
	res, err := r.ingredients.UpdateOne(
		ctx,
		bson.M{"ingredient_id": movement.Ingredient_id},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "stock_qty", Value: delta}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrIngredientNotFound
	}
	_, err = r.movements.InsertOne(ctx, movement)
	return err
}

func (r *IngredientRepository) MovementsByIngredient(ctx context.Context, ingredientID string) ([]models.StockMovement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(200)
	var list []models.StockMovement
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.movements.Find(ctx, bson.M{"ingredient_id": ingredientID}, opts)
		if err != nil {
			return err
		}
		list = list[:0]
		return cursor.All(ctx, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
