package models

import "gorm.io/gorm"

// Skill is a home page skill entry with a proficiency level
type Skill struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	IconText   string `json:"icon_text"`
	Color      string `json:"color" gorm:"default:'blue'"`
	SortOrder  int    `json:"sort_order" gorm:"default:0"`
	IsActive   bool   `json:"is_active"`
}
