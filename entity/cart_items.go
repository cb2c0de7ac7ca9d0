package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
}
