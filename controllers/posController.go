package controllers

import (
	"context"
	"errors"
	"net/http"

	"warmindo-pos/models"
	"warmindo-pos/repository"
	"warmindo-pos/services"

	"github.com/gin-gonic/gin"
)

type POSController struct {
	pos   *services.POSService
	menus *repository.MenuRepository
	hub   *Hub
}

func NewPOSController(pos *services.POSService, menus *repository.MenuRepository, hub *Hub) *POSController {
	return &POSController{pos: pos, menus: menus, hub: hub}
}

type posItemRequest struct {
	Menu_id string              `json:"menu_id" validate:"required"`
	Qty     int                 `json:"qty" validate:"required,min=1"`
	Note    string              `json:"note"`
	Options []models.ItemOption `json:"options"`
}

type posOrderRequest struct {
	Service_type   string           `json:"service_type" validate:"required,eq=dine_in|eq=takeaway"`
	Table_no       string           `json:"table_no"`
	Payment_method string           `json:"payment_method" validate:"required,eq=cash|eq=transfer|eq=ewallet|eq=qris"`
	Guest_name     string           `json:"guest_name"`
	Contact        string           `json:"contact"`
	Note           string           `json:"note"`
	Items          []posItemRequest `json:"items" validate:"required,min=1,dive"`
	// Mark_paid defaults to true: the counter takes payment up front.
	Mark_paid *bool `json:"mark_paid"`
}

func cartLines(items []posItemRequest) []services.OrderLine {
	lines := make([]services.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, services.OrderLine{
			Menu_id: it.Menu_id,
			Qty:     it.Qty,
			Note:    it.Note,
			Options: it.Options,
		})
	}
	return lines
}

func (pc *POSController) buildCart(c *gin.Context, ctx context.Context, items []posItemRequest) (*services.Cart, bool) {
	cart, err := services.BuildCart(ctx, pc.menus, cartLines(items))
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			respondError(c, services.ErrMenuUnavailable)
			return nil, false
		}
		respondError(c, err)
		return nil, false
	}
	return cart, true
}

// CreateOrder converts the submitted cart into a persisted order plus line
// items. Unit prices are snapshotted from the menus collection, never
// trusted from the client.
func (pc *POSController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req posOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, ok := pc.buildCart(c, ctx, req.Items)
		if !ok {
			return
		}

		markPaid := true
		if req.Mark_paid != nil {
			markPaid = *req.Mark_paid
		}

		result, err := pc.pos.Submit(ctx, services.SubmitInput{
			Cart:           cart,
			Service_type:   req.Service_type,
			Table_no:       req.Table_no,
			Payment_method: req.Payment_method,
			Guest_name:     req.Guest_name,
			Contact:        req.Contact,
			Note:           req.Note,
			Source:         "pos",
			Created_by:     c.GetString("uid"),
			MarkPaid:       markPaid,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		pc.hub.NotifyNewOrder(result.Order)
		c.JSON(http.StatusOK, result)
	}
}

type webOrderRequest struct {
	Service_type   string           `json:"service_type" validate:"required,eq=dine_in|eq=takeaway"`
	Table_no       string           `json:"table_no"`
	Payment_method string           `json:"payment_method" validate:"required,eq=cash|eq=transfer|eq=ewallet|eq=qris"`
	Guest_name     string           `json:"guest_name" validate:"required,min=2,max=100"`
	Contact        string           `json:"contact" validate:"required"`
	Note           string           `json:"note"`
	Items          []posItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateWebOrder takes an order from the customer site. Web orders always
// start at placed; payment is settled at the counter or verified from an
// uploaded proof afterwards.
func (pc *POSController) CreateWebOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req webOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, ok := pc.buildCart(c, ctx, req.Items)
		if !ok {
			return
		}

		result, err := pc.pos.Submit(ctx, services.SubmitInput{
			Cart:           cart,
			Service_type:   req.Service_type,
			Table_no:       req.Table_no,
			Payment_method: req.Payment_method,
			Guest_name:     req.Guest_name,
			Contact:        req.Contact,
			Note:           req.Note,
			Source:         "web",
		})
		if err != nil {
			respondError(c, err)
			return
		}

		pc.hub.NotifyNewOrder(result.Order)
		c.JSON(http.StatusOK, result)
	}
}

// GetPOSMenus lists only the menus orderable right now.
func (pc *POSController) GetPOSMenus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		menus, err := pc.menus.List(ctx, repository.MenuFilter{
			CategoryID:    c.Query("category_id"),
			Search:        c.Query("q"),
			OnlyAvailable: true,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}
