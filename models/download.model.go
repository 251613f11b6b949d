package models

import "gorm.io/gorm"

const (
	ItemTypeProject       = "project"
	ItemTypeStudyMaterial = "study_material"
)

// Download is an append-only record of a tracked download by a logged-in user
type Download struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null"`
	ItemType string `json:"item_type" gorm:"not null"` // project or study_material
	ItemID   uint   `json:"item_id" gorm:"not null"`
	Filename string `json:"filename" gorm:"not null"`
}
