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

type PaymentController struct {
	DB      *gorm.DB
	Service *services.OrderService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:      db,
		Service: services.NewOrderService(db),
	}
}

// CreatePayment finalizes an order at the till: payment row, order COMPLETED
// with the cashier's discount and charged amount, table freed.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var body struct {
		OrderID       uint     `json:"order_id" binding:"required"`
		Amount        *float64 `json:"amount" binding:"required"`
		PaymentMethod string   `json:"payment_method" binding:"required"`
		CashierID     uint     `json:"cashier_id" binding:"required"`
		Discount      float64  `json:"discount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if *body.Amount < 0 || body.Discount < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("amount and discount must not be negative"))
		return
	}

	payment, err := pc.Service.FinalizePayment(body.OrderID, *body.Amount, body.PaymentMethod, body.CashierID, body.Discount)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, services.ErrInvalidMethod),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrOrderClosed):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	default:
		utils.ErrorLogger.Printf("Error finalizing payment for order %d: %v", body.OrderID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to process payment"))
		return
	}

	order, err := pc.Service.Get(body.OrderID)
	if err == nil {
		events.BroadcastPaymentUpdate(*payment, *order)
		events.BroadcastTableUpdate(order.Table)
	}

	utils.InfoLogger.Printf("Payment of %.2f (%s) recorded for order %d", payment.Amount, payment.Method, payment.OrderID)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// GetPaymentByOrder -> payment record for one order
func (pc *PaymentController) GetPaymentByOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := pc.Service.Get(uint(orderID))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	if order.Payment == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no payment for this order"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", order.Payment)
}
