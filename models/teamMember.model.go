package models

import "gorm.io/gorm"

// TeamMember is a person shown on the home and about pages
type TeamMember struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Position    string `json:"position" gorm:"not null"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"image_url" gorm:"not null"`
	LinkedinURL string `json:"linkedin_url"`
	TwitterURL  string `json:"twitter_url"`
	GithubURL   string `json:"github_url"`
	DribbbleURL string `json:"dribbble_url"`
	BehanceURL  string `json:"behance_url"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"`
	IsActive    bool   `json:"is_active"`
}
