package models

import "time"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsVeg       bool      `gorm:"not null;default:true" json:"is_veg"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	IsSoldOut   bool      `gorm:"not null;default:false" json:"is_sold_out"`
	PrepTime    int       `gorm:"not null;default:15" json:"prep_time"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
