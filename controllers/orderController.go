package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"warmindo-pos/repository"
	"warmindo-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderController struct {
	orders *repository.OrderRepository
	status *services.StatusService
	pos    *services.POSService
	hub    *Hub
}

func NewOrderController(orders *repository.OrderRepository, status *services.StatusService, pos *services.POSService, hub *Hub) *OrderController {
	return &OrderController{orders: orders, status: status, pos: pos, hub: hub}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "200"), 10, 64)
		filter := repository.ListFilter{
			Status:      c.Query("status"),
			Source:      c.Query("source"),
			ServiceType: c.Query("service_type"),
			Search:      c.Query("q"),
			From:        parseDate(c.Query("from")),
			Limit:       limit,
		}
		if to := parseDate(c.Query("to")); to != nil {
			end := to.Add(24*time.Hour - time.Second)
			filter.To = &end
		}

		orders, err := oc.orders.List(ctx, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (oc *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := strings.TrimSpace(c.Param("order_id"))
		if _, err := uuid.Parse(orderId); err != nil {
			respondError(c, services.ErrInvalidOrderID)
			return
		}

		order, err := oc.orders.FindByID(ctx, orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := oc.orders.ItemsByOrder(ctx, orderId)
		if err != nil {
			respondError(c, err)
			return
		}

		cart := services.Cart{}
		for _, it := range items {
			note := ""
			if it.Note != nil {
				note = *it.Note
			}
			cart.Items = append(cart.Items, services.CartItem{
				Menu_id:    it.Menu_id,
				Name:       it.Name,
				Unit_price: it.Unit_price,
				Qty:        it.Qty,
				Note:       note,
				Options:    it.Options,
			})
		}
		totals := cart.ComputeTotals()

		proofLink := ""
		if order.Proof_url != nil {
			proofLink = oc.pos.ResolveProofURL(*order.Proof_url)
		}
		allowed := services.AllowedNext(services.Status(order.Status))

		c.JSON(http.StatusOK, gin.H{
			"order":        order,
			"items":        items,
			"totals":       totals,
			"proof_link":   proofLink,
			"allowed_next": allowed,
		})
	}
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (oc *OrderController) SetOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req setStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderId := c.Param("order_id")
		newStatus, err := oc.status.Transition(ctx, orderId, services.Status(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		oc.hub.NotifyStatusChanged(strings.TrimSpace(orderId), string(newStatus))
		c.JSON(http.StatusOK, gin.H{"order_id": strings.TrimSpace(orderId), "status": newStatus})
	}
}

// AdvanceOrder moves the order one step along the linear flow, the "Next"
// button in the order table.
func (oc *OrderController) AdvanceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := c.Param("order_id")
		newStatus, err := oc.status.Advance(ctx, orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		oc.hub.NotifyStatusChanged(strings.TrimSpace(orderId), string(newStatus))
		c.JSON(http.StatusOK, gin.H{"order_id": strings.TrimSpace(orderId), "status": newStatus})
	}
}

func (oc *OrderController) CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := c.Param("order_id")
		newStatus, err := oc.status.Cancel(ctx, orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		oc.hub.NotifyStatusChanged(strings.TrimSpace(orderId), string(newStatus))
		c.JSON(http.StatusOK, gin.H{"order_id": strings.TrimSpace(orderId), "status": newStatus})
	}
}

type setTableRequest struct {
	Table_no string `json:"table_no" validate:"required"`
}

// SetTable stores the table number; an order that was not dine-in becomes
// dine-in when it gains a table.
func (oc *OrderController) SetTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req setTableRequest
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
		order, err := oc.orders.FindByID(ctx, orderId)
		if err != nil {
			respondError(c, err)
			return
		}

		forceDineIn := !services.IsDineIn(order.Service_type)
		if err := oc.orders.SetTable(ctx, orderId, strings.TrimSpace(req.Table_no), forceDineIn); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": orderId, "table_no": strings.TrimSpace(req.Table_no)})
	}
}

// UploadProof stores the payment proof file and patches the order's proof
// reference. The order itself is left untouched when the upload fails.
func (oc *OrderController) UploadProof() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := strings.TrimSpace(c.Param("order_id"))
		if _, err := uuid.Parse(orderId); err != nil {
			respondError(c, services.ErrInvalidOrderID)
			return
		}
		if _, err := oc.orders.FindByID(ctx, orderId); err != nil {
			respondError(c, err)
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "proof file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		proofPath, err := oc.pos.AttachProof(ctx, orderId, fileHeader.Filename, file)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": orderId, "proof_url": proofPath})
	}
}

// GetProof resolves the stored proof path for display.
func (oc *OrderController) GetProof() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := strings.TrimSpace(c.Param("order_id"))
		if _, err := uuid.Parse(orderId); err != nil {
			respondError(c, services.ErrInvalidOrderID)
			return
		}
		order, err := oc.orders.FindByID(ctx, orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		if order.Proof_url == nil || *order.Proof_url == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "no proof attached yet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": oc.pos.ResolveProofURL(*order.Proof_url)})
	}
}
