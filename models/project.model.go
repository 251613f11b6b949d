package models

import "gorm.io/gorm"

const (
	ProjectFree = "free"
	ProjectDemo = "demo"
)

// Project represents a downloadable project or demo
type Project struct {
	gorm.Model
	Title           string           `json:"title" gorm:"not null"`
	Description     string           `json:"description" gorm:"not null"`
	CategoryID      *uint            `json:"category_id"`
	Category        *ProjectCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	FilePath        string           `json:"file_path"`
	GoogleDriveLink string           `json:"google_drive_link"`
	GithubLink      string           `json:"github_link"`
	ImageURL        string           `json:"image_url"`
	ProjectType     string           `json:"project_type" gorm:"default:'free'"` // free or demo
	IsActive        bool             `json:"is_active"`
	DownloadCount   int64            `json:"download_count" gorm:"default:0"` // only ever increases
}
