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

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
		if err != nil {
			return err
		}
		users = users[:0]
		return cursor.All(ctx, &users)
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := helpers.WithRetry(ctx, func() error {
		return r.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := helpers.WithRetry(ctx, func() error {
		return r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmailOrPhone(ctx context.Context, email, phone string) (int64, error) {
	q := bson.M{"$or": bson.A{bson.M{"email": email}, bson.M{"phone": phone}}}
	return r.users.CountDocuments(ctx, q)
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) Update(ctx context.Context, userID string, set bson.D) error {
	set = append(set, bson.E{Key: "updated_at", Value: time.Now()})
	res, err := r.users.UpdateOne(ctx, bson.M{"user_id": userID}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateTokens(ctx context.Context, userID, token, refreshToken string) error {
	return r.Update(ctx, userID, bson.D{
		{Key: "token", Value: token},
		{Key: "refresh_token", Value: refreshToken},
	})
}
