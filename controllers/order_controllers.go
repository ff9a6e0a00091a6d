package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/events"
	"rms-backend/services"
	"rms-backend/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:      db,
		Service: services.NewOrderService(db),
	}
}

// GetAllOrders -> latest 50 orders, newest first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder opens an order from the waiter's cart and occupies the table.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		TableID    uint                      `json:"table_id" binding:"required"`
		WaiterID   uint                      `json:"waiter_id" binding:"required"`
		OrderItems []services.OrderItemInput `json:"order_items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.Create(body.TableID, body.WaiterID, body.OrderItems)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrWaiterNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, services.ErrEmptyOrder):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	default:
		utils.ErrorLogger.Printf("Error creating order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to create order"))
		return
	}

	events.BroadcastOrderCreated(*order)
	events.BroadcastTableUpdate(order.Table)
	utils.InfoLogger.Printf("Order %s created for table #%d (total=%.2f)",
		order.OrderNumber, order.Table.TableNumber, order.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> one order with table, waiter, items and payment
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Service.Get(uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus advances the order. Marking READY also consumes inventory
// per line; the per-line results ride along in the response for the kitchen
// display.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, consumption, err := oc.Service.UpdateStatus(uint(orderID), body.Status)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrOrderClosed):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	default:
		utils.ErrorLogger.Printf("Error updating order %d: %v", orderID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to update order"))
		return
	}

	events.BroadcastOrderUpdate(*order)
	if order.Status == "COMPLETED" {
		events.BroadcastTableUpdate(order.Table)
	}
	utils.InfoLogger.Printf("Order %s moved to %s", order.OrderNumber, order.Status)

	data := gin.H{"order": order}
	if consumption != nil {
		data["inventory"] = consumption
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", data)
}
