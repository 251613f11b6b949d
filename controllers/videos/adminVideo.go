package videoController

import (
	"fmt"

	"folio/middleware"
	"folio/models"
	"folio/utils"
	categoryValidator "folio/validators/category"
	videoValidator "folio/validators/videos"

	"github.com/gofiber/fiber/v2"
)

// AdminListVideos lists all videos, active or not
func (h *Handler) AdminListVideos(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := 10

	var total int64
	h.DB.Model(&models.YouTubeVideo{}).Count(&total)

	var videos []models.YouTubeVideo
	if err := h.DB.Preload("Category").Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": videos,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminCreateVideo registers a YouTube video. The 11 character video id is
// extracted from the submitted URL. A missing title is filled from the
// oEmbed endpoint when reachable.
func (h *Handler) AdminCreateVideo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVideo").(*videoValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videoID, ok := utils.ExtractYouTubeID(reqData.VideoURL)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid YouTube URL!", nil)
	}

	if reqData.CategoryID != nil {
		var category models.YouTubeCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	title := reqData.Title
	if title == "" {
		if fetched, err := utils.FetchVideoTitle(videoID); err == nil {
			title = fetched
		}
	}
	if title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A title is required!", nil)
	}

	video := models.YouTubeVideo{
		Title:       title,
		Description: reqData.Description,
		VideoID:     videoID,
		CategoryID:  reqData.CategoryID,
		IsActive:    true,
	}
	if reqData.IsActive != nil {
		video.IsActive = *reqData.IsActive
	}

	if err := h.DB.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully!", video)
}

// AdminUpdateVideo updates provided fields only
func (h *Handler) AdminUpdateVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	var video models.YouTubeVideo
	if err := h.DB.First(&video, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*videoValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.VideoURL != "" {
		videoID, ok := utils.ExtractYouTubeID(reqData.VideoURL)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid YouTube URL!", nil)
		}
		video.VideoID = videoID
	}
	if reqData.Title != "" {
		video.Title = reqData.Title
	}
	if reqData.Description != "" {
		video.Description = reqData.Description
	}
	if reqData.CategoryID != nil {
		var category models.YouTubeCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		video.CategoryID = reqData.CategoryID
	}
	if reqData.IsActive != nil {
		video.IsActive = *reqData.IsActive
	}

	if err := h.DB.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

// AdminDeleteVideo permanently removes a video
func (h *Handler) AdminDeleteVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	var video models.YouTubeVideo
	if err := h.DB.First(&video, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}

// AdminListCategories lists video categories
func (h *Handler) AdminListCategories(c *fiber.Ctx) error {
	var categories []models.YouTubeCategory
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// AdminCreateCategory creates a video category
func (h *Handler) AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ?", reqData.Name).First(&models.YouTubeCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.YouTubeCategory{Name: reqData.Name, Description: reqData.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateCategory renames a video category
func (h *Handler) AdminUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.YouTubeCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ? AND id <> ?", reqData.Name, category.ID).First(&models.YouTubeCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := h.DB.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory removes a video category unless videos still
// reference it
func (h *Handler) AdminDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.YouTubeCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var count int64
	h.DB.Model(&models.YouTubeVideo{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		msg := fmt.Sprintf("Cannot delete category %q as it contains videos. Move them first.", category.Name)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, msg, nil)
	}

	if err := h.DB.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
