package materialController

import (
	"fmt"

	"folio/middleware"
	"folio/models"
	"folio/utils"
	categoryValidator "folio/validators/category"
	materialValidator "folio/validators/materials"

	"github.com/gofiber/fiber/v2"
)

// AdminListMaterials lists all study materials, active or not
func (h *Handler) AdminListMaterials(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := 10

	var total int64
	h.DB.Model(&models.StudyMaterial{}).Count(&total)

	var materials []models.StudyMaterial
	if err := h.DB.Preload("Category").Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study materials fetched successfully!", fiber.Map{
		"materials": materials,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminCreateMaterial creates a study material with optional document and
// thumbnail uploads
func (h *Handler) AdminCreateMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMaterial").(*materialValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CategoryID != nil {
		var category models.StudyMaterialCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	material := models.StudyMaterial{
		Title:        reqData.Title,
		Description:  reqData.Description,
		CategoryID:   reqData.CategoryID,
		DocURL:       reqData.DocURL,
		MaterialType: models.MaterialFree,
		Price:        reqData.Price,
		IsActive:     true,
	}
	if reqData.MaterialType != "" {
		material.MaterialType = reqData.MaterialType
	}
	if reqData.IsActive != nil {
		material.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("file"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, "materials")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		material.FilePath = filePath
	}

	if file, err := c.FormFile("thumbnail"); err == nil {
		thumbPath, err := utils.SaveUploadedFile(file, "materials_thumbs")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
		material.Thumbnail = thumbPath
	}

	if err := h.DB.Create(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create study material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Study material created successfully!", material)
}

// AdminUpdateMaterial updates provided fields only
func (h *Handler) AdminUpdateMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	var material models.StudyMaterial
	if err := h.DB.First(&material, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found!", nil)
	}

	reqData, ok := c.Locals("validatedMaterial").(*materialValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		material.Title = reqData.Title
	}
	if reqData.Description != "" {
		material.Description = reqData.Description
	}
	if reqData.CategoryID != nil {
		var category models.StudyMaterialCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		material.CategoryID = reqData.CategoryID
	}
	if reqData.DocURL != "" {
		material.DocURL = reqData.DocURL
	}
	if reqData.MaterialType != "" {
		material.MaterialType = reqData.MaterialType
	}
	if reqData.Price != nil {
		material.Price = reqData.Price
	}
	if reqData.IsActive != nil {
		material.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("file"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, "materials")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		material.FilePath = filePath
	}

	if file, err := c.FormFile("thumbnail"); err == nil {
		thumbPath, err := utils.SaveUploadedFile(file, "materials_thumbs")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
		material.Thumbnail = thumbPath
	}

	if err := h.DB.Save(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update study material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study material updated successfully!", material)
}

// AdminDeleteMaterial permanently removes a study material
func (h *Handler) AdminDeleteMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	var material models.StudyMaterial
	if err := h.DB.First(&material, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete study material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study material deleted successfully!", nil)
}

// AdminListCategories lists study material categories
func (h *Handler) AdminListCategories(c *fiber.Ctx) error {
	var categories []models.StudyMaterialCategory
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// AdminCreateCategory creates a study material category
func (h *Handler) AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ?", reqData.Name).First(&models.StudyMaterialCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.StudyMaterialCategory{Name: reqData.Name, Description: reqData.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateCategory renames a study material category
func (h *Handler) AdminUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.StudyMaterialCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ? AND id <> ?", reqData.Name, category.ID).First(&models.StudyMaterialCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := h.DB.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory removes a study material category unless materials
// still reference it
func (h *Handler) AdminDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.StudyMaterialCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var count int64
	h.DB.Model(&models.StudyMaterial{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		msg := fmt.Sprintf("Cannot delete category %q as it contains study materials. Move them first.", category.Name)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, msg, nil)
	}

	if err := h.DB.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
