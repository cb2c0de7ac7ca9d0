package entity

import (
	"gorm.io/gorm"
)

// Notification audience roles.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// Notification types.
const (
	NotifOrderUpdate = "order-update"
	NotifNewOrder    = "new-order"
)

type Notification struct {
	gorm.Model
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Read    bool   `json:"read"`

	OrderCode string `json:"orderId,omitempty"`

	// ForRole selects the audience; UserID is set only for customer
	// notifications (owner ones go to the admin feed as a whole).
	ForRole string `gorm:"not null" json:"forRole"`
	UserID  uint   `json:"userId,omitempty"`
}
