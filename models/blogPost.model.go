package models

import "gorm.io/gorm"

// BlogPost represents a blog article
type BlogPost struct {
	gorm.Model
	Title      string        `json:"title" gorm:"not null"`
	Content    string        `json:"content" gorm:"not null"`
	Thumbnail  string        `json:"thumbnail"`
	CategoryID *uint         `json:"category_id"`
	Category   *BlogCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ReadTime   string        `json:"read_time" gorm:"default:'5 min read'"`
	IsActive   bool          `json:"is_active"`
}
