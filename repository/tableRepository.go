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

var ErrTableNotFound = errors.New("table not found")

type TableRepository struct {
	tables *mongo.Collection
}

func NewTableRepository(db *mongo.Database) *TableRepository {
	return &TableRepository{tables: db.Collection("tables")}
}

func (r *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.tables.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "table_number", Value: 1}}))
		if err != nil {
			return err
		}
		tables = tables[:0]
		return cursor.All(ctx, &tables)
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepository) Insert(ctx context.Context, table *models.Table) error {
	_, err := r.tables.InsertOne(ctx, table)
	return err
}

func (r *TableRepository) Update(ctx context.Context, tableID string, set bson.D) error {
	set = append(set, bson.E{Key: "updated_at", Value: time.Now()})
	res, err := r.tables.UpdateOne(ctx, bson.M{"table_id": tableID}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTableNotFound
	}
	return nil
}
