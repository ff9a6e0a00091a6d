package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/events"
	"rms-backend/models"
	"rms-backend/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> manager adds a table to the floor plan
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber *int     `json:"table_number" binding:"required"`
		Capacity    *int     `json:"capacity" binding:"required"`
		Shape       string   `json:"shape"`
		PositionX   *float64 `json:"position_x"`
		PositionY   *float64 `json:"position_y"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Table
	if err := tc.DB.Where("table_number = ?", *req.TableNumber).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table number already exists"))
		return
	}

	table := models.Table{
		TableNumber: *req.TableNumber,
		Capacity:    *req.Capacity,
		Shape:       "SQUARE",
		PositionX:   req.PositionX,
		PositionY:   req.PositionY,
		Status:      models.TableFree,
	}
	if req.Shape != "" {
		table.Shape = req.Shape
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(table)
	utils.InfoLogger.Printf("New table created: #%d (capacity=%d)", table.TableNumber, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> whole floor plan, by table number
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("table_number asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> one table plus its open orders
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	var activeOrders []models.Order
	tc.DB.Preload("OrderItems.MenuItem").
		Where("table_id = ? AND status NOT IN ?", table.ID,
			[]string{models.OrderCompleted, models.OrderCancelled}).
		Find(&activeOrders)

	utils.RespondJSON(c, http.StatusOK, "Table detail", gin.H{
		"table":  table,
		"orders": activeOrders,
	})
}

// UpdateTable -> partial update (status, capacity, position)
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	var req struct {
		Status    *string  `json:"status"`
		Capacity  *int     `json:"capacity"`
		Shape     *string  `json:"shape"`
		PositionX *float64 `json:"position_x"`
		PositionY *float64 `json:"position_y"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case models.TableFree, models.TableOccupied, models.TableReserved, models.TableCleaning:
			table.Status = *req.Status
		default:
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table status"))
			return
		}
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Shape != nil {
		table.Shape = *req.Shape
	}
	if req.PositionX != nil {
		table.PositionX = req.PositionX
	}
	if req.PositionY != nil {
		table.PositionY = req.PositionY
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(table)
	utils.InfoLogger.Printf("Table #%d updated (status=%s)", table.TableNumber, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable refuses while the table has open orders.
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	var activeCount int64
	tc.DB.Model(&models.Order{}).
		Where("table_id = ? AND status NOT IN ?", table.ID,
			[]string{models.OrderCompleted, models.OrderCancelled}).
		Count(&activeCount)
	if activeCount > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cannot delete table with active orders"))
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table #%d deleted", table.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}
