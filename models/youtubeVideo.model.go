package models

import "gorm.io/gorm"

// YouTubeVideo represents a curated YouTube video entry
type YouTubeVideo struct {
	gorm.Model
	Title       string           `json:"title" gorm:"not null"`
	Description string           `json:"description"`
	VideoID     string           `json:"video_id" gorm:"not null"` // 11-char id extracted from the URL
	CategoryID  *uint            `json:"category_id"`
	Category    *YouTubeCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive    bool             `json:"is_active"`
}
