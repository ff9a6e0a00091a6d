package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/models"
	"rms-backend/services"
	"rms-backend/utils"
)

type InventoryController struct {
	DB      *gorm.DB
	Service *services.InventoryService
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{
		DB:      db,
		Service: services.NewInventoryService(db),
	}
}

// GetAllInventory -> stock levels for the manager screen
func (ic *InventoryController) GetAllInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := ic.DB.Preload("Category").Preload("MenuItem").
		Order("name asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", items)
}

// GetInventoryItem -> one item
func (ic *InventoryController) GetInventoryItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.InventoryItem
	if err := ic.DB.Preload("Category").Preload("MenuItem").First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item detail", item)
}

// CreateInventoryItem -> manager only (gated at the router)
func (ic *InventoryController) CreateInventoryItem(c *gin.Context) {
	var req struct {
		Name         string   `json:"name" binding:"required"`
		Description  *string  `json:"description"`
		CategoryID   *uint    `json:"category_id"`
		MenuItemID   *uint    `json:"menu_item_id"`
		CurrentStock *float64 `json:"current_stock" binding:"required"`
		MinStock     *float64 `json:"min_stock" binding:"required"`
		Unit         string   `json:"unit" binding:"required"`
		CostPerUnit  *float64 `json:"cost_per_unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.MenuItemID != nil {
		var menuItem models.MenuItem
		if err := ic.DB.First(&menuItem, *req.MenuItemID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
	}

	item := models.InventoryItem{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		MenuItemID:   req.MenuItemID,
		CurrentStock: *req.CurrentStock,
		MinStock:     *req.MinStock,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
	}
	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New inventory item created: %s (%.2f %s)", item.Name, item.CurrentStock, item.Unit)
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created", item)
}

// UpdateInventoryItem -> partial update (restocking, thresholds)
func (ic *InventoryController) UpdateInventoryItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.InventoryItem
	if err := ic.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	var req struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		CategoryID   *uint    `json:"category_id"`
		MenuItemID   *uint    `json:"menu_item_id"`
		CurrentStock *float64 `json:"current_stock"`
		MinStock     *float64 `json:"min_stock"`
		Unit         *string  `json:"unit"`
		CostPerUnit  *float64 `json:"cost_per_unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.MenuItemID != nil {
		item.MenuItemID = req.MenuItemID
	}
	if req.CurrentStock != nil {
		item.CurrentStock = *req.CurrentStock
	}
	if req.MinStock != nil {
		item.MinStock = *req.MinStock
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = req.CostPerUnit
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item updated", item)
}

// DeleteInventoryItem -> manager only (gated at the router)
func (ic *InventoryController) DeleteInventoryItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.InventoryItem
	if err := ic.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted", gin.H{"id": item.ID})
}

// ConsumeStock decrements stock for the kitchen. The body names either the
// inventory item itself or the menu item it is linked to; the inventory item
// id is the canonical key.
func (ic *InventoryController) ConsumeStock(c *gin.Context) {
	var req struct {
		InventoryItemID *uint    `json:"inventory_item_id"`
		MenuItemID      *uint    `json:"menu_item_id"`
		Quantity        *float64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.InventoryItemID == nil && req.MenuItemID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("inventory_item_id or menu_item_id is required"))
		return
	}

	var (
		item *models.InventoryItem
		err  error
	)
	if req.InventoryItemID != nil {
		item, err = ic.Service.ConsumeByItemID(*req.InventoryItemID, *req.Quantity)
	} else {
		item, err = ic.Service.ConsumeByMenuItemID(*req.MenuItemID, *req.Quantity)
	}

	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidQuantity):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	case errors.Is(err, services.ErrInventoryItemNotFound), errors.Is(err, services.ErrNotTracked):
		utils.RespondError(c, http.StatusNotFound, err)
		return
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Stock consumed", gin.H{
		"item":         item,
		"consumed":     *req.Quantity,
		"is_low_stock": item.IsLowStock(),
	})
}

// GetLowStock -> items at or below the minimum threshold
func (ic *InventoryController) GetLowStock(c *gin.Context) {
	items, err := ic.Service.LowStockItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Low stock items", items)
}
