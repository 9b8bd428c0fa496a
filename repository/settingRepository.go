package repository

import (
	"context"
	"time"

	"warmindo-pos/helpers"
	"warmindo-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingRepository struct {
	settings *mongo.Collection
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{settings: db.Collection("settings")}
}

func (r *SettingRepository) List(ctx context.Context) ([]models.Setting, error) {
	var list []models.Setting
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.settings.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
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

func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	upsert := true
	opts := options.UpdateOptions{Upsert: &upsert}
	_, err := r.settings.UpdateOne(
		ctx,
		bson.M{"key": key},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "value", Value: value},
				{Key: "updated_at", Value: time.Now()},
			}},
			{Key: "$setOnInsert", Value: bson.D{{Key: "_id", Value: primitive.NewObjectID()}}},
		},
		&opts,
	)
	return err
}
