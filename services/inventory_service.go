package services

import (
	"errors"

	"gorm.io/gorm"

	"rms-backend/models"
)

var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	// ErrNotTracked means the menu item has no linked inventory item. The
	// kitchen flow treats this as "nothing to consume", not as a failure.
	ErrNotTracked      = errors.New("no inventory tracking configured for this menu item")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

// ConsumeByItemID decrements stock for an inventory item by its own id.
func (s *InventoryService) ConsumeByItemID(itemID uint, quantity float64) (*models.InventoryItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item models.InventoryItem
	if err := s.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, err
	}

	return s.consume(&item, quantity)
}

// ConsumeByMenuItemID resolves the inventory item linked to a menu item and
// decrements it. At most one inventory item may link a given menu item.
func (s *InventoryService) ConsumeByMenuItemID(menuItemID uint, quantity float64) (*models.InventoryItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item models.InventoryItem
	if err := s.DB.Where("menu_item_id = ?", menuItemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotTracked
		}
		return nil, err
	}

	return s.consume(&item, quantity)
}

// consume applies a floor-at-zero decrement as one conditional UPDATE so that
// concurrent consumers of the same item cannot lose updates.
func (s *InventoryService) consume(item *models.InventoryItem, quantity float64) (*models.InventoryItem, error) {
	err := s.DB.Model(&models.InventoryItem{}).
		Where("id = ?", item.ID).
		Update("current_stock", gorm.Expr(
			"CASE WHEN current_stock > ? THEN current_stock - ? ELSE 0 END",
			quantity, quantity,
		)).Error
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Category").First(item, item.ID).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// LowStockItems lists every item at or below its minimum threshold.
func (s *InventoryService) LowStockItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.Where("current_stock <= min_stock").Order("name asc").Find(&items).Error
	return items, err
}
