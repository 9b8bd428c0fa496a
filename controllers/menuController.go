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

type MenuController struct {
	menus *repository.MenuRepository
}

func NewMenuController(menus *repository.MenuRepository) *MenuController {
	return &MenuController{menus: menus}
}

func (mc *MenuController) GetMenus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		menus, err := mc.menus.List(ctx, repository.MenuFilter{
			CategoryID: c.Query("category_id"),
			Search:     c.Query("q"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}

func (mc *MenuController) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		menu, err := mc.menus.FindByID(ctx, c.Param("menu_id"))
		if err != nil {
			if errors.Is(err, repository.ErrMenuNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

func (mc *MenuController) CreateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var menu models.Menu
		if err := c.BindJSON(&menu); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&menu); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		menu.ID = primitive.NewObjectID()
		menu.Menu_id = menu.ID.Hex()
		menu.Created_at = time.Now()
		menu.Updated_at = time.Now()

		if err := mc.menus.Insert(ctx, &menu); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu was not created"})
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

func (mc *MenuController) UpdateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var menu models.Menu
		if err := c.BindJSON(&menu); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj bson.D
		if menu.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: menu.Name})
		}
		if menu.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: menu.Price})
		}
		if menu.Category_id != nil {
			updateObj = append(updateObj, bson.E{Key: "category_id", Value: menu.Category_id})
		}
		if menu.Photo_url != nil {
			updateObj = append(updateObj, bson.E{Key: "photo_url", Value: menu.Photo_url})
		}
		updateObj = append(updateObj, bson.E{Key: "is_available", Value: menu.Is_available})

		if err := mc.menus.Update(ctx, c.Param("menu_id"), updateObj); err != nil {
			if errors.Is(err, repository.ErrMenuNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu updated"})
	}
}

func (mc *MenuController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		cats, err := mc.menus.ListCategories(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

func (mc *MenuController) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var cat models.MenuCategory
		if err := c.BindJSON(&cat); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&cat); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cat.ID = primitive.NewObjectID()
		cat.Category_id = cat.ID.Hex()
		cat.Created_at = time.Now()
		cat.Updated_at = time.Now()

		if err := mc.menus.InsertCategory(ctx, &cat); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "category was not created"})
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}
