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

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories -> sorted for menu display
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("sort_order asc, name asc").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// CreateCategory appends the new category after the current last sort order.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category name is required"))
		return
	}

	var existing models.Category
	if err := cc.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category already exists"))
		return
	}

	var last models.Category
	sortOrder := 0
	if err := cc.DB.Order("sort_order desc").First(&last).Error; err == nil {
		sortOrder = last.SortOrder + 1
	}

	category := models.Category{
		Name:        name,
		Description: req.Description,
		SortOrder:   sortOrder,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New category created: %s", category.Name)
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory -> partial update
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("category_id")

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		SortOrder   *int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory refuses while menu items still reference the category.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("category_id")

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var count int64
	cc.DB.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cannot delete category with menu items"))
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"id": category.ID})
}
