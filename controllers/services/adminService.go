package serviceController

import (
	"fmt"

	"folio/middleware"
	"folio/models"
	"folio/utils"
	categoryValidator "folio/validators/category"
	serviceValidator "folio/validators/services"

	"github.com/gofiber/fiber/v2"
)

// AdminListServices lists all services, active or not
func (h *Handler) AdminListServices(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := 10

	var total int64
	h.DB.Model(&models.Service{}).Count(&total)

	var services []models.Service
	if err := h.DB.Preload("Category").Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&services).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch services!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Services fetched successfully!", fiber.Map{
		"services": services,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminCreateService creates a service, with an optional image upload
func (h *Handler) AdminCreateService(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedService").(*serviceValidator.ServiceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CategoryID != nil {
		var category models.ServiceCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	adminUser, ok := c.Locals("adminUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	service := models.Service{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		CategoryID:  reqData.CategoryID,
		UserID:      &adminUser.ID,
		IsActive:    true,
	}
	if reqData.IsActive != nil {
		service.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "services")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		service.ImageURL = imagePath
	}

	if err := h.DB.Create(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Service created successfully!", service)
}

// AdminUpdateService updates provided fields only. The stored image path is
// replaced only when a new upload is present.
func (h *Handler) AdminUpdateService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid service id!", nil)
	}

	var service models.Service
	if err := h.DB.First(&service, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	reqData, ok := c.Locals("validatedService").(*serviceValidator.ServiceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		service.Title = reqData.Title
	}
	if reqData.Description != "" {
		service.Description = reqData.Description
	}
	if reqData.Price != nil {
		service.Price = reqData.Price
	}
	if reqData.CategoryID != nil {
		var category models.ServiceCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		service.CategoryID = reqData.CategoryID
	}
	if reqData.IsActive != nil {
		service.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "services")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		service.ImageURL = imagePath
	}

	if err := h.DB.Save(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service updated successfully!", service)
}

// AdminDeleteService permanently removes a service
func (h *Handler) AdminDeleteService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid service id!", nil)
	}

	var service models.Service
	if err := h.DB.First(&service, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service deleted successfully!", nil)
}

// AdminListCategories lists service categories
func (h *Handler) AdminListCategories(c *fiber.Ctx) error {
	var categories []models.ServiceCategory
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// AdminCreateCategory creates a service category
func (h *Handler) AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ?", reqData.Name).First(&models.ServiceCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.ServiceCategory{Name: reqData.Name, Description: reqData.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateCategory renames a service category. No propagation is needed:
// services reference categories by id.
func (h *Handler) AdminUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.ServiceCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ? AND id <> ?", reqData.Name, category.ID).First(&models.ServiceCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := h.DB.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory removes a service category unless services still
// reference it
func (h *Handler) AdminDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.ServiceCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var count int64
	h.DB.Model(&models.Service{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		msg := fmt.Sprintf("Cannot delete category %q as it contains services. Move them first.", category.Name)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, msg, nil)
	}

	if err := h.DB.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
