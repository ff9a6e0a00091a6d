package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/models"
	"rms-backend/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems -> full menu with categories
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Preload("Category").Order("name asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuByCategory filters via ?category_id=
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category_id is required"))
		return
	}

	var items []models.MenuItem
	if err := mc.DB.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("name asc").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items by category", items)
}

// CreateMenuItem -> manager only (gated at the router)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		CategoryID  uint     `json:"category_id" binding:"required"`
		Price       *float64 `json:"price" binding:"required"`
		IsVeg       *bool    `json:"is_veg"`
		IsAvailable *bool    `json:"is_available"`
		PrepTime    *int     `json:"prep_time"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := mc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	item := models.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		CategoryID:  category.ID,
		Price:       *req.Price,
		IsVeg:       true,
		IsAvailable: true,
		PrepTime:    15,
		Description: req.Description,
	}
	if req.IsVeg != nil {
		item.IsVeg = *req.IsVeg
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PrepTime != nil {
		item.PrepTime = *req.PrepTime
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.DB.Preload("Category").First(&item, item.ID)
	utils.InfoLogger.Printf("New menu item created: %s (price=%.2f)", item.Name, item.Price)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> partial update including availability/sold-out flags
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.MenuItem
	if err := mc.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		CategoryID  *uint    `json:"category_id"`
		Price       *float64 `json:"price"`
		IsVeg       *bool    `json:"is_veg"`
		IsAvailable *bool    `json:"is_available"`
		IsSoldOut   *bool    `json:"is_sold_out"`
		PrepTime    *int     `json:"prep_time"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := mc.DB.First(&category, *req.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		item.CategoryID = category.ID
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsVeg != nil {
		item.IsVeg = *req.IsVeg
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsSoldOut != nil {
		item.IsSoldOut = *req.IsSoldOut
	}
	if req.PrepTime != nil {
		item.PrepTime = *req.PrepTime
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.DB.Preload("Category").First(&item, item.ID)
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem -> manager only (gated at the router)
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.MenuItem
	if err := mc.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": item.ID})
}
