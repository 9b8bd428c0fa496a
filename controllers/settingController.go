package controllers

import (
	"context"
	"net/http"

	"warmindo-pos/models"
	"warmindo-pos/repository"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	settings *repository.SettingRepository
}

func NewSettingController(settings *repository.SettingRepository) *SettingController {
	return &SettingController{settings: settings}
}

func (sc *SettingController) GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := sc.settings.List(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func (sc *SettingController) UpsertSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var setting models.Setting
		if err := c.BindJSON(&setting); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&setting); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := sc.settings.Upsert(ctx, setting.Key, setting.Value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "setting update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "setting saved"})
	}
}
