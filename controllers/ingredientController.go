package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"warmindo-pos/models"
	"warmindo-pos/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IngredientController struct {
	ingredients *repository.IngredientRepository
}

func NewIngredientController(ingredients *repository.IngredientRepository) *IngredientController {
	return &IngredientController{ingredients: ingredients}
}

func (ic *IngredientController) GetIngredients() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		lowOnly := c.Query("low_stock") == "true"
		list, err := ic.ingredients.List(ctx, lowOnly)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func (ic *IngredientController) CreateIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var ing models.Ingredient
		if err := c.BindJSON(&ing); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&ing); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ing.ID = primitive.NewObjectID()
		ing.Ingredient_id = ing.ID.Hex()
		ing.Created_at = time.Now()
		ing.Updated_at = time.Now()

		if err := ic.ingredients.Insert(ctx, &ing); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ingredient was not created"})
			return
		}
		c.JSON(http.StatusOK, ing)
	}
}

func (ic *IngredientController) UpdateIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var ing models.Ingredient
		if err := c.BindJSON(&ing); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj bson.D
		if ing.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: ing.Name})
		}
		if ing.Unit != nil {
			updateObj = append(updateObj, bson.E{Key: "unit", Value: ing.Unit})
		}
		updateObj = append(updateObj, bson.E{Key: "min_stock", Value: ing.Min_stock})

		if err := ic.ingredients.Update(ctx, c.Param("ingredient_id"), updateObj); err != nil {
			if errors.Is(err, repository.ErrIngredientNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ingredient updated"})
	}
}

type movementRequest struct {
	Movement_type string  `json:"movement_type" validate:"required,eq=in|eq=out|eq=adjust"`
	Qty           float64 `json:"qty" validate:"required"`
	Note          string  `json:"note"`
}

// RecordMovement appends one stock ledger row and moves the on-hand
// quantity with it. "out" subtracts, "in" adds, "adjust" applies the signed
// qty as given.
func (ic *IngredientController) RecordMovement() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req movementRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		delta := req.Qty
		if req.Movement_type == "out" {
			delta = -req.Qty
		}

		movement := models.StockMovement{
			ID:            primitive.NewObjectID(),
			Ingredient_id: c.Param("ingredient_id"),
			Movement_type: req.Movement_type,
			Qty:           req.Qty,
			Created_at:    time.Now(),
		}
		movement.Movement_id = movement.ID.Hex()
		if req.Note != "" {
			movement.Note = &req.Note
		}
		if uid := c.GetString("uid"); uid != "" {
			movement.Created_by = &uid
		}

		if err := ic.ingredients.RecordMovement(ctx, &movement, delta); err != nil {
			if errors.Is(err, repository.ErrIngredientNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, movement)
	}
}

func (ic *IngredientController) GetMovements() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := ic.ingredients.MovementsByIngredient(ctx, c.Param("ingredient_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
