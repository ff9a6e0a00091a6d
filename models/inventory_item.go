package models

import "time"

type InventoryItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CategoryID  *uint     `json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	// Optional 1:1 link so the kitchen can consume stock by menu item.
	MenuItemID   *uint     `gorm:"uniqueIndex" json:"menu_item_id,omitempty"`
	MenuItem     *MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"menu_item,omitempty"`
	CurrentStock float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"current_stock"`
	MinStock     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"min_stock"`
	Unit         string    `gorm:"type:varchar(20);not null" json:"unit"`
	CostPerUnit  *float64  `gorm:"type:decimal(10,2)" json:"cost_per_unit,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// IsLowStock reports whether the item is at or below its minimum threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.MinStock
}
