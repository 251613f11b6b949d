package models

import "gorm.io/gorm"

const (
	MaterialFree = "free"
	MaterialPaid = "paid"
)

// StudyMaterial represents an educational resource (PDFs, documents, etc.)
type StudyMaterial struct {
	gorm.Model
	Title         string                 `json:"title" gorm:"not null"`
	Description   string                 `json:"description" gorm:"not null"`
	CategoryID    *uint                  `json:"category_id"`
	Category      *StudyMaterialCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Price         *float64               `json:"price"` // nil for free materials
	FilePath      string                 `json:"file_path"`
	DocURL        string                 `json:"doc_url"` // external document URL (Google Docs, etc.)
	Thumbnail     string                 `json:"thumbnail"`
	MaterialType  string                 `json:"material_type" gorm:"default:'free'"` // free or paid
	IsActive      bool                   `json:"is_active"`
	DownloadCount int64                  `json:"download_count" gorm:"default:0"` // only ever increases
}
