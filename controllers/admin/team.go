package adminController

import (
	"folio/middleware"
	"folio/models"
	"folio/utils"
	adminValidator "folio/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// AdminListTeam lists all team members in display order
func (h *Handler) AdminListTeam(c *fiber.Ctx) error {
	var members []models.TeamMember
	if err := h.DB.Order("sort_order, id").Find(&members).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch team members!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Team members fetched successfully!", members)
}

// AdminCreateTeamMember creates a team member. The portrait arrives either
// as an image upload part or as image_url.
func (h *Handler) AdminCreateTeamMember(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTeamMember").(*adminValidator.TeamMemberRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	member := models.TeamMember{
		Name:        reqData.Name,
		Position:    reqData.Position,
		Bio:         reqData.Bio,
		ImageURL:    reqData.ImageURL,
		LinkedinURL: reqData.LinkedinURL,
		TwitterURL:  reqData.TwitterURL,
		GithubURL:   reqData.GithubURL,
		DribbbleURL: reqData.DribbbleURL,
		BehanceURL:  reqData.BehanceURL,
		IsActive:    true,
	}
	if reqData.SortOrder != nil {
		member.SortOrder = *reqData.SortOrder
	}
	if reqData.IsActive != nil {
		member.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "team")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		member.ImageURL = imagePath
	}

	if member.ImageURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "An image is required!", nil)
	}

	if err := h.DB.Create(&member).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create team member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Team member created successfully!", member)
}

// AdminUpdateTeamMember updates provided fields only
func (h *Handler) AdminUpdateTeamMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid team member id!", nil)
	}

	var member models.TeamMember
	if err := h.DB.First(&member, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Team member not found!", nil)
	}

	reqData, ok := c.Locals("validatedTeamMember").(*adminValidator.TeamMemberRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		member.Name = reqData.Name
	}
	if reqData.Position != "" {
		member.Position = reqData.Position
	}
	if reqData.Bio != "" {
		member.Bio = reqData.Bio
	}
	if reqData.ImageURL != "" {
		member.ImageURL = reqData.ImageURL
	}
	if reqData.LinkedinURL != "" {
		member.LinkedinURL = reqData.LinkedinURL
	}
	if reqData.TwitterURL != "" {
		member.TwitterURL = reqData.TwitterURL
	}
	if reqData.GithubURL != "" {
		member.GithubURL = reqData.GithubURL
	}
	if reqData.DribbbleURL != "" {
		member.DribbbleURL = reqData.DribbbleURL
	}
	if reqData.BehanceURL != "" {
		member.BehanceURL = reqData.BehanceURL
	}
	if reqData.SortOrder != nil {
		member.SortOrder = *reqData.SortOrder
	}
	if reqData.IsActive != nil {
		member.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "team")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		member.ImageURL = imagePath
	}

	if err := h.DB.Save(&member).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update team member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Team member updated successfully!", member)
}

// AdminDeleteTeamMember permanently removes a team member
func (h *Handler) AdminDeleteTeamMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid team member id!", nil)
	}

	var member models.TeamMember
	if err := h.DB.First(&member, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Team member not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&member).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete team member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Team member deleted successfully!", nil)
}
