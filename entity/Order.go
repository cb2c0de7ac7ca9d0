package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Code is the short numeric identifier shown to customers
	// (e.g. "483920"); the DB primary key stays internal.
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Status OrderStatus `gorm:"not null;default:pending" json:"status"`

	// Delivery details snapshotted at checkout
	Address       string `json:"address"`
	City          string `json:"city"`
	PinCode       string `json:"pinCode"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentRef    string `json:"paymentRef"`
	Notes         string `json:"notes"`

	EstimatedMinutes int `json:"estimatedDeliveryTime"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items         []OrderItem    `json:"items"`
	TrackingSteps []TrackingStep `json:"trackingSteps"`
}
