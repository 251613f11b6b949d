package adminController

import (
	"folio/middleware"
	"folio/models"
	"folio/utils"

	"github.com/gofiber/fiber/v2"
)

// HomeContentRequest carries the editable home page fields. Empty fields
// leave the stored value untouched.
type HomeContentRequest struct {
	HeroTitleLine1 string `json:"hero_title_line1" form:"hero_title_line1"`
	HeroTitleLine2 string `json:"hero_title_line2" form:"hero_title_line2"`
	HeroSubtitle   string `json:"hero_subtitle" form:"hero_subtitle"`

	ProfileName   string `json:"profile_name" form:"profile_name"`
	ProfileTitle  string `json:"profile_title" form:"profile_title"`
	ProfileRating string `json:"profile_rating" form:"profile_rating"`
	ProfileSkills string `json:"profile_skills" form:"profile_skills"`

	StatProjects  string `json:"stat_projects" form:"stat_projects"`
	StatMaterials string `json:"stat_materials" form:"stat_materials"`
	StatTeam      string `json:"stat_team" form:"stat_team"`
	StatDownloads string `json:"stat_downloads" form:"stat_downloads"`

	KnowledgeHubTitle    string `json:"knowledge_hub_title" form:"knowledge_hub_title"`
	KnowledgeHubSubtitle string `json:"knowledge_hub_subtitle" form:"knowledge_hub_subtitle"`
	WorkflowTitle        string `json:"workflow_title" form:"workflow_title"`
	WorkflowSubtitle     string `json:"workflow_subtitle" form:"workflow_subtitle"`

	CvButtonText   string `json:"cv_button_text" form:"cv_button_text"`
	CvButtonLink   string `json:"cv_button_link" form:"cv_button_link"`
	HireButtonText string `json:"hire_button_text" form:"hire_button_text"`
}

// AboutContentRequest carries the editable about page fields
type AboutContentRequest struct {
	HeroTitle      string `json:"hero_title" form:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle" form:"hero_subtitle"`
	HeroStat1Count string `json:"hero_stat_1_count" form:"hero_stat_1_count"`
	HeroStat1Label string `json:"hero_stat_1_label" form:"hero_stat_1_label"`
	HeroStat2Count string `json:"hero_stat_2_count" form:"hero_stat_2_count"`
	HeroStat2Label string `json:"hero_stat_2_label" form:"hero_stat_2_label"`
	HeroStat3Count string `json:"hero_stat_3_count" form:"hero_stat_3_count"`
	HeroStat3Label string `json:"hero_stat_3_label" form:"hero_stat_3_label"`

	MissionTitle   string `json:"mission_title" form:"mission_title"`
	MissionContent string `json:"mission_content" form:"mission_content"`
	VisionTitle    string `json:"vision_title" form:"vision_title"`
	VisionContent  string `json:"vision_content" form:"vision_content"`

	ValuesTitle       string `json:"values_title" form:"values_title"`
	Value1Title       string `json:"value1_title" form:"value1_title"`
	Value1Description string `json:"value1_description" form:"value1_description"`
	Value2Title       string `json:"value2_title" form:"value2_title"`
	Value2Description string `json:"value2_description" form:"value2_description"`
	Value3Title       string `json:"value3_title" form:"value3_title"`
	Value3Description string `json:"value3_description" form:"value3_description"`

	StoryTitle   string `json:"story_title" form:"story_title"`
	StoryContent string `json:"story_content" form:"story_content"`

	TeamTitle    string `json:"team_title" form:"team_title"`
	TeamSubtitle string `json:"team_subtitle" form:"team_subtitle"`

	CtaTitle      string `json:"cta_title" form:"cta_title"`
	CtaSubtitle   string `json:"cta_subtitle" form:"cta_subtitle"`
	CtaButtonText string `json:"cta_button_text" form:"cta_button_text"`
	CtaButtonLink string `json:"cta_button_link" form:"cta_button_link"`
}

// AdminGetHomeContent returns the home page singleton
func (h *Handler) AdminGetHomeContent(c *fiber.Ctx) error {
	content, err := models.GetHomeContent(h.DB)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch home content!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home content fetched successfully!", content)
}

// AdminUpdateHomeContent updates provided home page fields only. A
// profile_image part replaces the stored profile image.
func (h *Handler) AdminUpdateHomeContent(c *fiber.Ctx) error {
	content, err := models.GetHomeContent(h.DB)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch home content!", nil)
	}

	reqData := new(HomeContentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.HeroTitleLine1 != "" {
		content.HeroTitleLine1 = reqData.HeroTitleLine1
	}
	if reqData.HeroTitleLine2 != "" {
		content.HeroTitleLine2 = reqData.HeroTitleLine2
	}
	if reqData.HeroSubtitle != "" {
		content.HeroSubtitle = reqData.HeroSubtitle
	}
	if reqData.ProfileName != "" {
		content.ProfileName = reqData.ProfileName
	}
	if reqData.ProfileTitle != "" {
		content.ProfileTitle = reqData.ProfileTitle
	}
	if reqData.ProfileRating != "" {
		content.ProfileRating = reqData.ProfileRating
	}
	if reqData.ProfileSkills != "" {
		content.ProfileSkills = reqData.ProfileSkills
	}
	if reqData.StatProjects != "" {
		content.StatProjects = reqData.StatProjects
	}
	if reqData.StatMaterials != "" {
		content.StatMaterials = reqData.StatMaterials
	}
	if reqData.StatTeam != "" {
		content.StatTeam = reqData.StatTeam
	}
	if reqData.StatDownloads != "" {
		content.StatDownloads = reqData.StatDownloads
	}
	if reqData.KnowledgeHubTitle != "" {
		content.KnowledgeHubTitle = reqData.KnowledgeHubTitle
	}
	if reqData.KnowledgeHubSubtitle != "" {
		content.KnowledgeHubSubtitle = reqData.KnowledgeHubSubtitle
	}
	if reqData.WorkflowTitle != "" {
		content.WorkflowTitle = reqData.WorkflowTitle
	}
	if reqData.WorkflowSubtitle != "" {
		content.WorkflowSubtitle = reqData.WorkflowSubtitle
	}
	if reqData.CvButtonText != "" {
		content.CvButtonText = reqData.CvButtonText
	}
	if reqData.CvButtonLink != "" {
		content.CvButtonLink = reqData.CvButtonLink
	}
	if reqData.HireButtonText != "" {
		content.HireButtonText = reqData.HireButtonText
	}

	if file, err := c.FormFile("profile_image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "home")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		content.ProfileImage = imagePath
	}

	if err := h.DB.Save(content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update home content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home content updated successfully!", content)
}

// AdminGetAboutContent returns the about page singleton
func (h *Handler) AdminGetAboutContent(c *fiber.Ctx) error {
	content, err := models.GetAboutContent(h.DB)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch about content!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "About content fetched successfully!", content)
}

// AdminUpdateAboutContent updates provided about page fields only. A
// hero_image part replaces the stored hero image.
func (h *Handler) AdminUpdateAboutContent(c *fiber.Ctx) error {
	content, err := models.GetAboutContent(h.DB)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch about content!", nil)
	}

	reqData := new(AboutContentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.HeroTitle != "" {
		content.HeroTitle = reqData.HeroTitle
	}
	if reqData.HeroSubtitle != "" {
		content.HeroSubtitle = reqData.HeroSubtitle
	}
	if reqData.HeroStat1Count != "" {
		content.HeroStat1Count = reqData.HeroStat1Count
	}
	if reqData.HeroStat1Label != "" {
		content.HeroStat1Label = reqData.HeroStat1Label
	}
	if reqData.HeroStat2Count != "" {
		content.HeroStat2Count = reqData.HeroStat2Count
	}
	if reqData.HeroStat2Label != "" {
		content.HeroStat2Label = reqData.HeroStat2Label
	}
	if reqData.HeroStat3Count != "" {
		content.HeroStat3Count = reqData.HeroStat3Count
	}
	if reqData.HeroStat3Label != "" {
		content.HeroStat3Label = reqData.HeroStat3Label
	}
	if reqData.MissionTitle != "" {
		content.MissionTitle = reqData.MissionTitle
	}
	if reqData.MissionContent != "" {
		content.MissionContent = reqData.MissionContent
	}
	if reqData.VisionTitle != "" {
		content.VisionTitle = reqData.VisionTitle
	}
	if reqData.VisionContent != "" {
		content.VisionContent = reqData.VisionContent
	}
	if reqData.ValuesTitle != "" {
		content.ValuesTitle = reqData.ValuesTitle
	}
	if reqData.Value1Title != "" {
		content.Value1Title = reqData.Value1Title
	}
	if reqData.Value1Description != "" {
		content.Value1Description = reqData.Value1Description
	}
	if reqData.Value2Title != "" {
		content.Value2Title = reqData.Value2Title
	}
	if reqData.Value2Description != "" {
		content.Value2Description = reqData.Value2Description
	}
	if reqData.Value3Title != "" {
		content.Value3Title = reqData.Value3Title
	}
	if reqData.Value3Description != "" {
		content.Value3Description = reqData.Value3Description
	}
	if reqData.StoryTitle != "" {
		content.StoryTitle = reqData.StoryTitle
	}
	if reqData.StoryContent != "" {
		content.StoryContent = reqData.StoryContent
	}
	if reqData.TeamTitle != "" {
		content.TeamTitle = reqData.TeamTitle
	}
	if reqData.TeamSubtitle != "" {
		content.TeamSubtitle = reqData.TeamSubtitle
	}
	if reqData.CtaTitle != "" {
		content.CtaTitle = reqData.CtaTitle
	}
	if reqData.CtaSubtitle != "" {
		content.CtaSubtitle = reqData.CtaSubtitle
	}
	if reqData.CtaButtonText != "" {
		content.CtaButtonText = reqData.CtaButtonText
	}
	if reqData.CtaButtonLink != "" {
		content.CtaButtonLink = reqData.CtaButtonLink
	}

	if file, err := c.FormFile("hero_image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "about")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		content.HeroImageURL = imagePath
	}

	if err := h.DB.Save(content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update about content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About content updated successfully!", content)
}
