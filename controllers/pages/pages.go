package pagesController

import (
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Home returns the home page content with active skills and team members
func (h *Handler) Home(c *fiber.Ctx) error {
	content, err := models.GetHomeContent(h.DB)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch home content!", nil)
	}

	var skills []models.Skill
	h.DB.Where("is_active = ?", true).Order("sort_order, id").Find(&skills)

	var teamMembers []models.TeamMember
	h.DB.Where("is_active = ?", true).Order("sort_order, id").Find(&teamMembers)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home content fetched successfully!", fiber.Map{
		"content":      content,
		"skills":       skills,
		"team_members": teamMembers,
	})
}

// About returns the about page content
func (h *Handler) About(c *fiber.Ctx) error {
	content, err := models.GetAboutContent(h.DB)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch about content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About content fetched successfully!", fiber.Map{
		"content": content,
	})
}
