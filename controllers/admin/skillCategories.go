package adminController

import (
	"fmt"

	"folio/middleware"
	"folio/models"
	categoryValidator "folio/validators/category"

	"github.com/gofiber/fiber/v2"
)

// AdminListSkillCategories lists skill categories
func (h *Handler) AdminListSkillCategories(c *fiber.Ctx) error {
	var categories []models.SkillCategory
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// AdminCreateSkillCategory creates a skill category
func (h *Handler) AdminCreateSkillCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ?", reqData.Name).First(&models.SkillCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.SkillCategory{Name: reqData.Name, Description: reqData.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateSkillCategory renames a skill category. Skills keep the
// category label they were saved with.
func (h *Handler) AdminUpdateSkillCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.SkillCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ? AND id <> ?", reqData.Name, category.ID).First(&models.SkillCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := h.DB.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteSkillCategory removes a skill category unless skills still
// carry its label
func (h *Handler) AdminDeleteSkillCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.SkillCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var count int64
	h.DB.Model(&models.Skill{}).Where("category = ?", category.Name).Count(&count)
	if count > 0 {
		msg := fmt.Sprintf("Cannot delete category %q as it contains skills. Move them first.", category.Name)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, msg, nil)
	}

	if err := h.DB.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
