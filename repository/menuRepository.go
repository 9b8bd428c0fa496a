package repository

import (
	"context"
	"errors"
	"time"

	"warmindo-pos/helpers"
	"warmindo-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMenuNotFound = errors.New("menu not found")

type MenuRepository struct {
	menus      *mongo.Collection
	categories *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		menus:      db.Collection("menus"),
		categories: db.Collection("menu_categories"),
	}
}

type MenuFilter struct {
	CategoryID    string
	Search        string
	OnlyAvailable bool
}

func (r *MenuRepository) List(ctx context.Context, filter MenuFilter) ([]models.Menu, error) {
	q := bson.M{}
	if filter.CategoryID != "" {
		q["category_id"] = filter.CategoryID
	}
	if filter.Search != "" {
		q["name"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}
	if filter.OnlyAvailable {
		q["is_available"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	var menus []models.Menu
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.menus.Find(ctx, q, opts)
		if err != nil {
			return err
		}
		menus = menus[:0]
		return cursor.All(ctx, &menus)
	})
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, menuID string) (*models.Menu, error) {
	var menu models.Menu
	err := helpers.WithRetry(ctx, func() error {
		return r.menus.FindOne(ctx, bson.M{"menu_id": menuID}).Decode(&menu)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Insert(ctx context.Context, menu *models.Menu) error {
	_, err := r.menus.InsertOne(ctx, menu)
	return err
}

func (r *MenuRepository) Update(ctx context.Context, menuID string, set bson.D) error {
	set = append(set, bson.E{Key: "updated_at", Value: time.Now()})
	res, err := r.menus.UpdateOne(ctx, bson.M{"menu_id": menuID}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMenuNotFound
	}
	return nil
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]models.MenuCategory, error) {
	var cats []models.MenuCategory
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
		if err != nil {
			return err
		}
		cats = cats[:0]
		return cursor.All(ctx, &cats)
	})
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *MenuRepository) InsertCategory(ctx context.Context, cat *models.MenuCategory) error {
	_, err := r.categories.InsertOne(ctx, cat)
	return err
}
