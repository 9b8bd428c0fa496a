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

type TableController struct {
	tables *repository.TableRepository
}

func NewTableController(tables *repository.TableRepository) *TableController {
	return &TableController{tables: tables}
}

func (tc *TableController) GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tables, err := tc.tables.List(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tables)
	}
}

func (tc *TableController) CreateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		table.ID = primitive.NewObjectID()
		table.Table_id = table.ID.Hex()
		table.Is_active = true
		table.Created_at = time.Now()
		table.Updated_at = time.Now()

		if err := tc.tables.Insert(ctx, &table); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "table was not created"})
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func (tc *TableController) UpdateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj bson.D
		if table.Table_number != nil {
			updateObj = append(updateObj, bson.E{Key: "table_number", Value: table.Table_number})
		}
		if table.Number_of_guests != nil {
			updateObj = append(updateObj, bson.E{Key: "number_of_guests", Value: table.Number_of_guests})
		}
		updateObj = append(updateObj, bson.E{Key: "is_active", Value: table.Is_active})

		if err := tc.tables.Update(ctx, c.Param("table_id"), updateObj); err != nil {
			if errors.Is(err, repository.ErrTableNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "table updated"})
	}
}
