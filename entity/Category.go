package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}
