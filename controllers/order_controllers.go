package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platsajacki/make-this-order/models"
	"github.com/platsajacki/make-this-order/services"
	"github.com/platsajacki/make-this-order/utils"
)

type OrderController struct {
	DB      *gorm.DB
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, service: services.NewOrderService(db)}
}

// GetAllOrders -> list orders with table and items, newest first.
// Supports ?status= (case-insensitive) and ?table_number= filters.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Table").Preload("OrderItems.Dish").Order("orders.created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("LOWER(orders.status) = ?", strings.ToLower(status))
	}
	if rawNumber := c.Query("table_number"); rawNumber != "" {
		number, err := strconv.ParseUint(rawNumber, 10, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid table_number %q", rawNumber))
			return
		}
		query = query.
			Joins("JOIN tables ON tables.id = orders.table_id").
			Where("tables.number = ?", number)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", ToOrderResponses(orders))
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id %q", c.Param("order_id")))
		return
	}

	order, err := oc.service.GetByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", ToOrderResponse(*order))
}

// CreateOrder -> create a pending order with its items in one transaction.
// The table is referenced by its number, dishes by id; both must exist
// before the order service is invoked.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := oc.DB.Where("number = ?", req.Table).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("table %d does not exist", req.Table))
		return
	}

	items, err := oc.resolveItems(req.Items)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.service.Create(services.OrderCreateInput{Table: table, Items: items})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for table %d (total=%s)", order.ID, table.Number, order.TotalPrice)
	utils.RespondJSON(c, http.StatusCreated, "Order created", ToOrderResponse(*order))
}

// UpdateOrder -> patch status, table and/or items. A non-empty items
// list wholesale-replaces the order's items; otherwise they stay as-is.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id %q", c.Param("order_id")))
		return
	}

	order, err := oc.service.GetByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	input := services.OrderUpdateInput{Status: req.Status}
	if req.Status != nil && !models.IsValidOrderStatus(*req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown order status %q", *req.Status))
		return
	}
	if req.Table != nil {
		var table models.Table
		if err := oc.DB.Where("number = ?", *req.Table).First(&table).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("table %d does not exist", *req.Table))
			return
		}
		input.Table = &table
	}
	if len(req.Items) > 0 {
		items, err := oc.resolveItems(req.Items)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		input.Items = items
	}

	updated, err := oc.service.Update(order, input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d updated (status=%s, total=%s)", updated.ID, updated.Status, updated.TotalPrice)
	utils.RespondJSON(c, http.StatusOK, "Order updated", ToOrderResponse(*updated))
}

// DeleteOrder -> remove the order together with its items
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id %q", c.Param("order_id")))
		return
	}

	order, err := oc.service.GetByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := oc.service.Delete(order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}

// resolveItems turns incoming item lines into validated inputs with the
// referenced dishes loaded. A missing dish fails the whole request
// before any transaction begins.
func (oc *OrderController) resolveItems(reqs []OrderItemRequest) ([]services.OrderItemInput, error) {
	items := make([]services.OrderItemInput, 0, len(reqs))
	for _, r := range reqs {
		var dish models.Dish
		if err := oc.DB.First(&dish, r.Dish).Error; err != nil {
			return nil, fmt.Errorf("dish %d does not exist", r.Dish)
		}
		items = append(items, services.OrderItemInput{Dish: dish, Quantity: r.Quantity})
	}
	return items, nil
}
