package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations, preload only when needed
	Orders        []Order        `json:"-"`
	Reviews       []Review       `json:"-"`
	Favorites     []Favorite     `json:"-"`
	Notifications []Notification `json:"-"`
}
