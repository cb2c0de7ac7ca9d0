package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `json:"image"`

	CategorySlug string `gorm:"index" json:"category"`

	IsVegetarian bool `json:"is_vegetarian"`
	IsSpicy      bool `json:"is_spicy"`

	// Review aggregates, recomputed when a review is submitted
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`

	Reviews []Review `json:"-"`
}
