package models

import "time"

const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
	PaymentUPI  = "UPI"
)

// Payment records the amount a cashier actually charged for an order, which may
// diverge from the order total when a discount is applied at the till.
type Payment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	OrderID   uint       `gorm:"uniqueIndex;not null" json:"order_id"`
	Order     Order      `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Amount    float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method    string     `gorm:"type:varchar(10);not null" json:"method"`
	Status    string     `gorm:"type:varchar(20);not null;default:'COMPLETED'" json:"status"`
	CashierID uint       `gorm:"not null" json:"cashier_id"`
	Cashier   User       `gorm:"foreignKey:CashierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// ValidPaymentMethod reports whether method is an accepted payment method.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}
