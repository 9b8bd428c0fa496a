package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"warmindo-pos/models"
	"warmindo-pos/repository"
	"warmindo-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReceiptController struct {
	dispatches *repository.DispatchRepository
	orders     *repository.OrderRepository
}

func NewReceiptController(dispatches *repository.DispatchRepository, orders *repository.OrderRepository) *ReceiptController {
	return &ReceiptController{dispatches: dispatches, orders: orders}
}

type dispatchRequest struct {
	Channel string `json:"channel" validate:"required,eq=whatsapp|eq=email"`
	Address string `json:"address" validate:"required"`
}

// QueueDispatch records a receipt send request for an existing order.
// Delivery happens out of band.
func (rc *ReceiptController) QueueDispatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req dispatchRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderId := strings.TrimSpace(c.Param("order_id"))
		if _, err := uuid.Parse(orderId); err != nil {
			respondError(c, services.ErrInvalidOrderID)
			return
		}
		if _, err := rc.orders.FindByID(ctx, orderId); err != nil {
			respondError(c, err)
			return
		}

		dispatch := models.ReceiptDispatch{
			ID:        primitive.NewObjectID(),
			Order_id:  orderId,
			Channel:   req.Channel,
			Address:   req.Address,
			Queued_at: time.Now(),
		}
		dispatch.Dispatch_id = dispatch.ID.Hex()

		if err := rc.dispatches.Insert(ctx, &dispatch); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "receipt dispatch was not queued"})
			return
		}
		c.JSON(http.StatusOK, dispatch)
	}
}

func (rc *ReceiptController) GetDispatchesByDate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		from, err := time.Parse("2006-01-02", c.Param("startDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
			return
		}
		to, err := time.Parse("2006-01-02", c.Param("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
			return
		}
		to = to.Add(24*time.Hour - time.Second)

		list, err := rc.dispatches.ListByDateRange(ctx, from, to)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
