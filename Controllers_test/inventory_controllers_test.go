package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rms-backend/controllers"
	"rms-backend/models"
)

func setupInventoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	invCtrl := controllers.NewInventoryController(db)
	r.GET("/inventory", invCtrl.GetAllInventory)
	r.GET("/inventory/low-stock", invCtrl.GetLowStock)
	r.POST("/inventory", invCtrl.CreateInventoryItem)
	r.POST("/inventory/consume", invCtrl.ConsumeStock)
	r.GET("/inventory/:item_id", invCtrl.GetInventoryItem)
	r.PATCH("/inventory/:item_id", invCtrl.UpdateInventoryItem)
	r.DELETE("/inventory/:item_id", invCtrl.DeleteInventoryItem)
	return r
}

func seedInventoryItem(t *testing.T, db *gorm.DB, name string, stock, min float64) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name:         name,
		CurrentStock: stock,
		MinStock:     min,
		Unit:         "kg",
	}
	assert.NoError(t, db.Create(&item).Error)
	return item
}

func TestConsumeByInventoryItemID(t *testing.T) {
	db := newTestDB(t, "inventory_consume")
	r := setupInventoryRouter(db)

	tomatoes := seedInventoryItem(t, db, "Tomatoes", 5, 3)

	w := doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{
		"inventory_item_id": tomatoes.ID,
		"quantity":          3,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_low_stock"])
	assert.InDelta(t, 3.0, data["consumed"].(float64), 0.001)
	item := data["item"].(map[string]interface{})
	assert.InDelta(t, 2.0, item["current_stock"].(float64), 0.001)
}

func TestConsumeFloorsAtZero(t *testing.T) {
	db := newTestDB(t, "inventory_floor")
	r := setupInventoryRouter(db)

	flour := seedInventoryItem(t, db, "Flour", 2, 1)

	// Asking for more than is on hand empties the item, never negative
	w := doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{
		"inventory_item_id": flour.ID,
		"quantity":          10,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.InventoryItem
	assert.NoError(t, db.First(&fresh, flour.ID).Error)
	assert.InDelta(t, 0.0, fresh.CurrentStock, 0.001)
}

func TestConsumeByMenuItemID(t *testing.T) {
	db := newTestDB(t, "inventory_by_menu")
	r := setupInventoryRouter(db)

	pizza := seedMenuItem(t, db, "Margherita Pizza", 16.99)
	mozzarella := models.InventoryItem{
		Name:         "Mozzarella",
		CurrentStock: 8,
		MinStock:     4,
		Unit:         "kg",
		MenuItemID:   &pizza.ID,
	}
	assert.NoError(t, db.Create(&mozzarella).Error)

	w := doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{
		"menu_item_id": pizza.ID,
		"quantity":     2,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.InventoryItem
	assert.NoError(t, db.First(&fresh, mozzarella.ID).Error)
	assert.InDelta(t, 6.0, fresh.CurrentStock, 0.001)
}

func TestConsumeErrors(t *testing.T) {
	db := newTestDB(t, "inventory_errors")
	r := setupInventoryRouter(db)

	tomatoes := seedInventoryItem(t, db, "Tomatoes", 5, 3)
	soda := seedMenuItem(t, db, "Fresh Lime Soda", 3.99)

	// Neither key given
	w := doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive quantity
	w = doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{
		"inventory_item_id": tomatoes.ID,
		"quantity":          -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Menu item with no inventory link
	w = doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{
		"menu_item_id": soda.ID,
		"quantity":     1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown inventory item
	w = doJSON(t, r, "POST", "/inventory/consume", map[string]interface{}{
		"inventory_item_id": 9999,
		"quantity":          1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryCRUDAndLowStock(t *testing.T) {
	db := newTestDB(t, "inventory_crud")
	r := setupInventoryRouter(db)

	w := doJSON(t, r, "POST", "/inventory", map[string]interface{}{
		"name":          "Coffee Beans",
		"current_stock": 6,
		"min_stock":     2,
		"unit":          "kg",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	itemID := int(decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64))

	// Restock via partial update
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/inventory/%d", itemID), map[string]interface{}{
		"current_stock": 1.5,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/inventory/low-stock", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	low := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, low, 1)
	assert.Equal(t, "Coffee Beans", low[0].(map[string]interface{})["name"])

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/inventory/%d", itemID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/inventory/%d", itemID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
