package models

import "gorm.io/gorm"

const (
	InquiryNew       = "new"
	InquiryContacted = "contacted"
	InquiryClosed    = "closed"
)

// Inquiry is a contact form submission
type Inquiry struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Subject string `json:"subject" gorm:"not null"`
	Message string `json:"message" gorm:"not null"`
	Status  string `json:"status" gorm:"default:'new'"` // new, contacted or closed
}
