package models

import "time"

const (
	OrderNew        = "NEW"
	OrderInProgress = "IN_PROGRESS"
	OrderReady      = "READY"
	OrderServed     = "SERVED"
	OrderCompleted  = "COMPLETED"
	OrderCancelled  = "CANCELLED"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(30);unique;not null" json:"order_number"`
	TableID     uint        `gorm:"not null" json:"table_id"`
	Table       Table       `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table"`
	WaiterID    uint        `gorm:"not null" json:"waiter_id"`
	Waiter      User        `gorm:"foreignKey:WaiterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"waiter"`
	Status      string      `gorm:"type:varchar(20);not null;default:'NEW'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Discount    float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount"`
	FinalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"final_amount"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	Payment     *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// ValidOrderStatus reports whether status is a known order status.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderNew, OrderInProgress, OrderReady, OrderServed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// TerminalOrderStatus reports whether status admits no further transitions.
func TerminalOrderStatus(status string) bool {
	return status == OrderCompleted || status == OrderCancelled
}
