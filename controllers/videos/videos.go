package videoController

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

const publicPageSize = 9

// ListVideos returns active videos, optionally filtered by category name,
// along with the three most recent as featured
func (h *Handler) ListVideos(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	category := c.Query("category", "All")

	query := h.DB.Model(&models.YouTubeVideo{}).Where("you_tube_videos.is_active = ?", true)
	if category != "" && category != "All" {
		query = query.Joins("JOIN you_tube_categories ON you_tube_categories.id = you_tube_videos.category_id").
			Where("you_tube_categories.name = ?", category)
	}

	var total int64
	query.Count(&total)

	var videos []models.YouTubeVideo
	if err := query.Preload("Category").Order("you_tube_videos.created_at desc").
		Offset((page - 1) * publicPageSize).Limit(publicPageSize).Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	var featured []models.YouTubeVideo
	h.DB.Where("is_active = ?", true).Order("created_at desc").Limit(3).Find(&featured)

	var categories []string
	h.DB.Model(&models.YouTubeCategory{}).Order("name").Pluck("name", &categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos":     videos,
		"featured":   featured,
		"categories": categories,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": publicPageSize,
		},
	})
}

// GetVideo returns a single active video
func (h *Handler) GetVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	var video models.YouTubeVideo
	if err := h.DB.Preload("Category").Where("is_active = ?", true).First(&video, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", video)
}
