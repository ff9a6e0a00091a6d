package models

import "time"

const (
	TableFree     = "FREE"
	TableOccupied = "OCCUPIED"
	TableReserved = "RESERVED"
	TableCleaning = "CLEANING"
)

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber int       `gorm:"unique;not null" json:"table_number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Shape       string    `gorm:"type:varchar(20);not null;default:'SQUARE'" json:"shape"`
	PositionX   *float64  `json:"position_x,omitempty"`
	PositionY   *float64  `json:"position_y,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null;default:'FREE'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
