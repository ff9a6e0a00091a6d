package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rms-backend/controllers"
	"rms-backend/models"
	"rms-backend/services"
)

func setupReportRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	reportCtrl := controllers.NewReportController(db)
	r.GET("/reports/dashboard", reportCtrl.GetDashboardStats)
	r.GET("/reports/sales", reportCtrl.GetSalesSummary)
	return r
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t, "reports_dashboard")
	r := setupReportRouter(db)

	waiter := seedUser(t, db, "Waiter", "waiter@test.com", models.RoleWaiter)
	cashier := seedUser(t, db, "Cashier", "cashier@test.com", models.RoleCashier)
	paidTable := seedTable(t, db, 1)
	openTable := seedTable(t, db, 2)
	seedTable(t, db, 3)
	pasta := seedMenuItem(t, db, "Vegetable Pasta", 14.99)
	seedInventoryItem(t, db, "Tomatoes", 2, 5)

	svc := services.NewOrderService(db)
	paid, err := svc.Create(paidTable.ID, waiter.ID, []services.OrderItemInput{
		{MenuItemID: pasta.ID, Quantity: 2, Price: 14.99, Subtotal: 29.98},
	})
	assert.NoError(t, err)
	_, err = svc.FinalizePayment(paid.ID, 27.98, models.PaymentCash, cashier.ID, 2.00)
	assert.NoError(t, err)

	_, err = svc.Create(openTable.ID, waiter.ID, []services.OrderItemInput{
		{MenuItemID: pasta.ID, Quantity: 1, Price: 14.99, Subtotal: 14.99},
	})
	assert.NoError(t, err)

	w := doJSON(t, r, "GET", "/reports/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)["data"].(map[string]interface{})

	tables := stats["tables"].(map[string]interface{})
	assert.InDelta(t, 2.0, tables["free"].(float64), 0.001)
	assert.InDelta(t, 1.0, tables["occupied"].(float64), 0.001)
	assert.InDelta(t, 3.0, tables["total"].(float64), 0.001)

	assert.InDelta(t, 1.0, stats["open_orders"].(float64), 0.001)
	// The payment just recorded counts toward today's takings
	assert.InDelta(t, 27.98, stats["today_revenue"].(float64), 0.001)
	assert.InDelta(t, 1.0, stats["low_stock_items"].(float64), 0.001)
}

func TestSalesSummary(t *testing.T) {
	db := newTestDB(t, "reports_sales")
	r := setupReportRouter(db)

	waiter := seedUser(t, db, "Waiter", "waiter@test.com", models.RoleWaiter)
	cashier := seedUser(t, db, "Cashier", "cashier@test.com", models.RoleCashier)
	table := seedTable(t, db, 1)
	pasta := seedMenuItem(t, db, "Vegetable Pasta", 14.99)

	svc := services.NewOrderService(db)
	order, err := svc.Create(table.ID, waiter.ID, []services.OrderItemInput{
		{MenuItemID: pasta.ID, Quantity: 3, Price: 14.99, Subtotal: 44.97},
	})
	assert.NoError(t, err)
	_, err = svc.FinalizePayment(order.ID, 44.97, models.PaymentCard, cashier.ID, 0)
	assert.NoError(t, err)

	cancelled, err := svc.Create(table.ID, waiter.ID, []services.OrderItemInput{
		{MenuItemID: pasta.ID, Quantity: 1, Price: 14.99, Subtotal: 14.99},
	})
	assert.NoError(t, err)
	_, _, err = svc.UpdateStatus(cancelled.ID, models.OrderCancelled)
	assert.NoError(t, err)

	w := doJSON(t, r, "GET", "/reports/sales", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	summary := decodeBody(t, w)["data"].(map[string]interface{})

	assert.InDelta(t, 1.0, summary["orders_completed"].(float64), 0.001)
	assert.InDelta(t, 1.0, summary["orders_cancelled"].(float64), 0.001)
	assert.InDelta(t, 44.97, summary["gross_revenue"].(float64), 0.001)

	byMethod := summary["by_method"].([]interface{})
	assert.Len(t, byMethod, 1)
	assert.Equal(t, "CARD", byMethod[0].(map[string]interface{})["method"])

	popular := summary["popular_items"].([]interface{})
	assert.NotEmpty(t, popular)
	top := popular[0].(map[string]interface{})
	assert.Equal(t, "Vegetable Pasta", top["name"])
	assert.InDelta(t, 4.0, top["quantity"].(float64), 0.001)
}
