package models

import "gorm.io/gorm"

// One category table per content domain. All content types reference their
// category through a foreign key; names are unique within each table.

// ServiceCategory groups services
type ServiceCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}

// ProjectCategory groups projects
type ProjectCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}

// StudyMaterialCategory groups study materials
type StudyMaterialCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}

// YouTubeCategory groups YouTube videos
type YouTubeCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}

// BlogCategory groups blog posts
type BlogCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}

// SkillCategory groups skills shown on the home page
type SkillCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}
