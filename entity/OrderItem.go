package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	// Name is snapshotted so later menu edits don't rewrite history
	Name string `json:"name"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
