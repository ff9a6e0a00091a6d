package models

import "time"

const (
	RoleManager = "MANAGER"
	RoleWaiter  = "WAITER"
	RoleChef    = "CHEF"
	RoleCashier = "CASHIER"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// ValidRole reports whether role is one of the staff roles.
func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleWaiter, RoleChef, RoleCashier:
		return true
	}
	return false
}
