package adminController

import (
	"folio/middleware"
	"folio/models"
	adminValidator "folio/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// AdminListSkills lists all skills in display order
func (h *Handler) AdminListSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := h.DB.Order("sort_order, id").Find(&skills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch skills!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully!", skills)
}

// AdminCreateSkill creates a home page skill entry
func (h *Handler) AdminCreateSkill(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSkill").(*adminValidator.SkillRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	skill := models.Skill{
		Name:     reqData.Name,
		Category: reqData.Category,
		IconText: reqData.IconText,
		Color:    reqData.Color,
		IsActive: true,
	}
	if reqData.Percentage != nil {
		skill.Percentage = *reqData.Percentage
	} else {
		skill.Percentage = 50
	}
	if reqData.SortOrder != nil {
		skill.SortOrder = *reqData.SortOrder
	}
	if reqData.IsActive != nil {
		skill.IsActive = *reqData.IsActive
	}

	if err := h.DB.Create(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill created successfully!", skill)
}

// AdminUpdateSkill updates provided fields only
func (h *Handler) AdminUpdateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}

	var skill models.Skill
	if err := h.DB.First(&skill, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Skill not found!", nil)
	}

	reqData, ok := c.Locals("validatedSkill").(*adminValidator.SkillRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		skill.Name = reqData.Name
	}
	if reqData.Category != "" {
		skill.Category = reqData.Category
	}
	if reqData.Percentage != nil {
		skill.Percentage = *reqData.Percentage
	}
	if reqData.IconText != "" {
		skill.IconText = reqData.IconText
	}
	if reqData.Color != "" {
		skill.Color = reqData.Color
	}
	if reqData.SortOrder != nil {
		skill.SortOrder = *reqData.SortOrder
	}
	if reqData.IsActive != nil {
		skill.IsActive = *reqData.IsActive
	}

	if err := h.DB.Save(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill updated successfully!", skill)
}

// AdminDeleteSkill permanently removes a skill
func (h *Handler) AdminDeleteSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}

	var skill models.Skill
	if err := h.DB.First(&skill, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Skill not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill deleted successfully!", nil)
}
