package models

import "gorm.io/gorm"

// Service represents a freelancing service offered on the platform
type Service struct {
	gorm.Model
	Title       string           `json:"title" gorm:"not null"`
	Description string           `json:"description" gorm:"not null"`
	Price       *float64         `json:"price"`
	ImageURL    string           `json:"image_url"`
	CategoryID  *uint            `json:"category_id"`
	Category    *ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	UserID      *uint            `json:"user_id"` // admin who created it
	IsActive    bool             `json:"is_active"`
}
