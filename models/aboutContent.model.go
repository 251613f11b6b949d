package models

import (
	"errors"

	"gorm.io/gorm"
)

// AboutContent holds the editable about page content. Singleton, same
// guard scheme as HomeContent.
type AboutContent struct {
	gorm.Model
	HeroTitle      string `json:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle"`
	HeroImageURL   string `json:"hero_image_url"`
	HeroStat1Count string `json:"hero_stat_1_count"`
	HeroStat1Label string `json:"hero_stat_1_label"`
	HeroStat2Count string `json:"hero_stat_2_count"`
	HeroStat2Label string `json:"hero_stat_2_label"`
	HeroStat3Count string `json:"hero_stat_3_count"`
	HeroStat3Label string `json:"hero_stat_3_label"`

	MissionTitle   string `json:"mission_title"`
	MissionContent string `json:"mission_content"`
	VisionTitle    string `json:"vision_title"`
	VisionContent  string `json:"vision_content"`

	ValuesTitle       string `json:"values_title"`
	Value1Title       string `json:"value1_title"`
	Value1Description string `json:"value1_description"`
	Value2Title       string `json:"value2_title"`
	Value2Description string `json:"value2_description"`
	Value3Title       string `json:"value3_title"`
	Value3Description string `json:"value3_description"`

	StoryTitle   string `json:"story_title"`
	StoryContent string `json:"story_content"`

	TeamTitle    string `json:"team_title"`
	TeamSubtitle string `json:"team_subtitle"`

	CtaTitle      string `json:"cta_title"`
	CtaSubtitle   string `json:"cta_subtitle"`
	CtaButtonText string `json:"cta_button_text"`
	CtaButtonLink string `json:"cta_button_link"`

	SingletonGuard int `json:"-" gorm:"uniqueIndex;default:1"`
}

func defaultAboutContent() AboutContent {
	return AboutContent{
		HeroTitle:      "About Our Platform",
		HeroSubtitle:   "Learn more about who we are and what we do",
		HeroStat1Count: "50+",
		HeroStat1Label: "Team Members",
		HeroStat2Count: "150+",
		HeroStat2Label: "Projects",
		HeroStat3Count: "99%",
		HeroStat3Label: "Success Rate",

		MissionTitle:   "Our Mission",
		MissionContent: "We are dedicated to providing excellent services...",
		VisionTitle:    "Our Vision",
		VisionContent:  "To be the leading platform in our industry...",

		ValuesTitle:       "Our Values",
		Value1Title:       "Innovation",
		Value1Description: "We constantly innovate to serve you better",
		Value2Title:       "Quality",
		Value2Description: "Quality is at the heart of everything we do",
		Value3Title:       "Transparency",
		Value3Description: "We believe in open and honest communication",

		StoryTitle:   "Our Story",
		StoryContent: "Founded in 2024, we started with a simple idea...",

		TeamTitle:    "Meet Our Team",
		TeamSubtitle: "The talented people behind our success",

		CtaTitle:      "Ready to Get Started?",
		CtaSubtitle:   "Join us today and experience the difference",
		CtaButtonText: "Explore Services",
		CtaButtonLink: "/services",

		SingletonGuard: 1,
	}
}

// GetAboutContent returns the about page content, creating the row with
// defaults on first access.
func GetAboutContent(db *gorm.DB) (*AboutContent, error) {
	var content AboutContent
	err := db.First(&content).Error
	if err == nil {
		return &content, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	content = defaultAboutContent()
	if err := db.Create(&content).Error; err != nil {
		var existing AboutContent
		if ferr := db.First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &content, nil
}
