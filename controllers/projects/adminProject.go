package projectController

import (
	"fmt"

	"folio/middleware"
	"folio/models"
	"folio/utils"
	categoryValidator "folio/validators/category"
	projectValidator "folio/validators/projects"

	"github.com/gofiber/fiber/v2"
)

// AdminListProjects lists all projects, active or not
func (h *Handler) AdminListProjects(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := 10

	var total int64
	h.DB.Model(&models.Project{}).Count(&total)

	var projects []models.Project
	if err := h.DB.Preload("Category").Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminCreateProject creates a project with optional image and archive
// uploads
func (h *Handler) AdminCreateProject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProject").(*projectValidator.ProjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CategoryID != nil {
		var category models.ProjectCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	project := models.Project{
		Title:           reqData.Title,
		Description:     reqData.Description,
		CategoryID:      reqData.CategoryID,
		GoogleDriveLink: reqData.GoogleDriveLink,
		GithubLink:      reqData.GithubLink,
		ProjectType:     models.ProjectFree,
		IsActive:        true,
	}
	if reqData.ProjectType != "" {
		project.ProjectType = reqData.ProjectType
	}
	if reqData.IsActive != nil {
		project.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "projects")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		project.ImageURL = imagePath
	}

	if file, err := c.FormFile("file"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, "project_files")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		project.FilePath = filePath
	}

	if err := h.DB.Create(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", project)
}

// AdminUpdateProject updates provided fields only. Stored file and image
// paths survive updates without a new upload.
func (h *Handler) AdminUpdateProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project id!", nil)
	}

	var project models.Project
	if err := h.DB.First(&project, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	reqData, ok := c.Locals("validatedProject").(*projectValidator.ProjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		project.Title = reqData.Title
	}
	if reqData.Description != "" {
		project.Description = reqData.Description
	}
	if reqData.CategoryID != nil {
		var category models.ProjectCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		project.CategoryID = reqData.CategoryID
	}
	if reqData.GoogleDriveLink != "" {
		project.GoogleDriveLink = reqData.GoogleDriveLink
	}
	if reqData.GithubLink != "" {
		project.GithubLink = reqData.GithubLink
	}
	if reqData.ProjectType != "" {
		project.ProjectType = reqData.ProjectType
	}
	if reqData.IsActive != nil {
		project.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, "projects")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
		}
		project.ImageURL = imagePath
	}

	if file, err := c.FormFile("file"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, "project_files")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		project.FilePath = filePath
	}

	if err := h.DB.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", project)
}

// AdminDeleteProject permanently removes a project
func (h *Handler) AdminDeleteProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project id!", nil)
	}

	var project models.Project
	if err := h.DB.First(&project, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}

// AdminListCategories lists project categories
func (h *Handler) AdminListCategories(c *fiber.Ctx) error {
	var categories []models.ProjectCategory
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// AdminCreateCategory creates a project category
func (h *Handler) AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ?", reqData.Name).First(&models.ProjectCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.ProjectCategory{Name: reqData.Name, Description: reqData.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateCategory renames a project category
func (h *Handler) AdminUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.ProjectCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ? AND id <> ?", reqData.Name, category.ID).First(&models.ProjectCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := h.DB.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory removes a project category unless projects still
// reference it
func (h *Handler) AdminDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.ProjectCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var count int64
	h.DB.Model(&models.Project{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		msg := fmt.Sprintf("Cannot delete category %q as it contains projects. Move them first.", category.Name)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, msg, nil)
	}

	if err := h.DB.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
