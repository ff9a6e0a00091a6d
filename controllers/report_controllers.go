package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/models"
	"rms-backend/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetDashboardStats -> table occupancy, open orders and today's takings
func (rc *ReportController) GetDashboardStats(c *gin.Context) {
	stats := gin.H{}

	var free, occupied, reserved, cleaning int64
	rc.DB.Model(&models.Table{}).Where("status = ?", models.TableFree).Count(&free)
	rc.DB.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&occupied)
	rc.DB.Model(&models.Table{}).Where("status = ?", models.TableReserved).Count(&reserved)
	rc.DB.Model(&models.Table{}).Where("status = ?", models.TableCleaning).Count(&cleaning)
	stats["tables"] = gin.H{
		"free":     free,
		"occupied": occupied,
		"reserved": reserved,
		"cleaning": cleaning,
		"total":    free + occupied + reserved + cleaning,
	}

	var openOrders int64
	rc.DB.Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderCompleted, models.OrderCancelled}).
		Count(&openOrders)
	stats["open_orders"] = openOrders

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var todayRevenue float64
	rc.DB.Model(&models.Payment{}).
		Where("created_at >= ?", midnight).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&todayRevenue)
	stats["today_revenue"] = todayRevenue

	var lowStock int64
	rc.DB.Model(&models.InventoryItem{}).
		Where("current_stock <= min_stock").
		Count(&lowStock)
	stats["low_stock_items"] = lowStock

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetSalesSummary -> revenue and top sellers for the manager's reports page
func (rc *ReportController) GetSalesSummary(c *gin.Context) {
	var summary struct {
		OrdersCompleted int64   `json:"orders_completed"`
		OrdersCancelled int64   `json:"orders_cancelled"`
		GrossRevenue    float64 `json:"gross_revenue"`
		TotalDiscount   float64 `json:"total_discount"`
		ByMethod        []struct {
			Method  string  `json:"method"`
			Count   int64   `json:"count"`
			Revenue float64 `json:"revenue"`
		} `json:"by_method"`
		PopularItems []struct {
			MenuItemID uint    `json:"menu_item_id"`
			Name       string  `json:"name"`
			Quantity   int64   `json:"quantity"`
			Revenue    float64 `json:"revenue"`
		} `json:"popular_items"`
	}

	rc.DB.Model(&models.Order{}).Where("status = ?", models.OrderCompleted).Count(&summary.OrdersCompleted)
	rc.DB.Model(&models.Order{}).Where("status = ?", models.OrderCancelled).Count(&summary.OrdersCancelled)

	rc.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&summary.GrossRevenue)
	rc.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderCompleted).
		Select("COALESCE(SUM(discount), 0)").
		Row().Scan(&summary.TotalDiscount)

	rc.DB.Raw(`
		SELECT method, COUNT(id) as count, COALESCE(SUM(amount), 0) as revenue
		FROM payments
		GROUP BY method
		ORDER BY revenue DESC
	`).Scan(&summary.ByMethod)

	rc.DB.Raw(`
		SELECT mi.id as menu_item_id, mi.name as name,
		       COALESCE(SUM(oi.quantity), 0) as quantity,
		       COALESCE(SUM(oi.subtotal), 0) as revenue
		FROM order_items oi
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		GROUP BY mi.id, mi.name
		ORDER BY quantity DESC
		LIMIT 10
	`).Scan(&summary.PopularItems)

	utils.RespondJSON(c, http.StatusOK, "Sales summary", summary)
}
