package models

import (
	"errors"

	"gorm.io/gorm"
)

// HomeContent holds the editable home page content. Exactly one row ever
// exists; the unique singleton guard makes the lazy create race safe.
type HomeContent struct {
	gorm.Model
	HeroTitleLine1 string `json:"hero_title_line1"`
	HeroTitleLine2 string `json:"hero_title_line2"`
	HeroSubtitle   string `json:"hero_subtitle"`

	ProfileImage  string `json:"profile_image"`
	ProfileName   string `json:"profile_name"`
	ProfileTitle  string `json:"profile_title"`
	ProfileRating string `json:"profile_rating"`
	ProfileSkills string `json:"profile_skills"` // comma separated

	StatProjects  string `json:"stat_projects"`
	StatMaterials string `json:"stat_materials"`
	StatTeam      string `json:"stat_team"`
	StatDownloads string `json:"stat_downloads"`

	KnowledgeHubTitle    string `json:"knowledge_hub_title"`
	KnowledgeHubSubtitle string `json:"knowledge_hub_subtitle"`
	WorkflowTitle        string `json:"workflow_title"`
	WorkflowSubtitle     string `json:"workflow_subtitle"`

	CvButtonText   string `json:"cv_button_text"`
	CvButtonLink   string `json:"cv_button_link"`
	HireButtonText string `json:"hire_button_text"`

	SingletonGuard int `json:"-" gorm:"uniqueIndex;default:1"`
}

func defaultHomeContent() HomeContent {
	return HomeContent{
		HeroTitleLine1: "Collaborate, Manage,",
		HeroTitleLine2: "Grow Together.",
		HeroSubtitle:   "Your centralized platform for project management, study materials, and team knowledge sharing.",

		ProfileName:   "Michael Chen",
		ProfileTitle:  "Lead Developer & Team Manager",
		ProfileRating: "5.0",
		ProfileSkills: "Go,React,Node.js,UI/UX",

		StatProjects:  "150+",
		StatMaterials: "500+",
		StatTeam:      "50+",
		StatDownloads: "1.2k",

		KnowledgeHubTitle:    "Premium Digital Ecosystem.",
		KnowledgeHubSubtitle: "Unlock elite documentation, strategic training, and global insights designed for peak performance.",
		WorkflowTitle:        "Master Your Workflow",
		WorkflowSubtitle:     "Experience a streamlined journey from registration to project completion with our integrated team tools.",

		CvButtonText:   "Download CV",
		HireButtonText: "Hire Me",

		SingletonGuard: 1,
	}
}

// GetHomeContent returns the home page content, creating the row with
// defaults on first access. Losing the create race falls back to the
// winner's row.
func GetHomeContent(db *gorm.DB) (*HomeContent, error) {
	var content HomeContent
	err := db.First(&content).Error
	if err == nil {
		return &content, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	content = defaultHomeContent()
	if err := db.Create(&content).Error; err != nil {
		var existing HomeContent
		if ferr := db.First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &content, nil
}
