package repository

import (
	"context"
	"time"

	"warmindo-pos/helpers"
	"warmindo-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DispatchRepository struct {
	dispatches *mongo.Collection
}

func NewDispatchRepository(db *mongo.Database) *DispatchRepository {
	return &DispatchRepository{dispatches: db.Collection("receipt_dispatches")}
}

func (r *DispatchRepository) Insert(ctx context.Context, d *models.ReceiptDispatch) error {
	_, err := r.dispatches.InsertOne(ctx, d)
	return err
}

func (r *DispatchRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.ReceiptDispatch, error) {
	q := bson.M{"queued_at": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "queued_at", Value: -1}}).SetLimit(500)
	var list []models.ReceiptDispatch
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.dispatches.Find(ctx, q, opts)
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
