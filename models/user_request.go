package models

import "time"

const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
)

// UserRequest is a staff registration awaiting manager review. Approval copies
// the hashed password into a permanent User record; the request itself never
// leaves APPROVED/REJECTED once reviewed.
type UserRequest struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	Email           string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password        string     `gorm:"type:varchar(255);not null" json:"-"`
	Phone           *string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role            string     `gorm:"type:varchar(20);not null" json:"role"`
	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	ReviewedBy      *uint      `json:"reviewed_by,omitempty"`
	Reviewer        *User      `gorm:"foreignKey:ReviewedBy;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}
