package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	// OrderCode links a review to the order it came from, when known
	OrderCode string `json:"orderCode,omitempty"`

	HelpfulCount int `json:"helpfulCount"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}

// ReviewVote records a single "helpful" vote; one per user per review.
type ReviewVote struct {
	gorm.Model
	ReviewID uint `gorm:"uniqueIndex:idx_vote_review_user" json:"reviewId"`
	UserID   uint `gorm:"uniqueIndex:idx_vote_review_user" json:"userId"`
}
