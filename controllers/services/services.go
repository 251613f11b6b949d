package serviceController

import (
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const publicPageSize = 6

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// ListServices returns active services, optionally filtered by category name
func (h *Handler) ListServices(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	category := c.Query("category", "All")

	query := h.DB.Model(&models.Service{}).Where("services.is_active = ?", true)
	if category != "" && category != "All" {
		query = query.Joins("JOIN service_categories ON service_categories.id = services.category_id").
			Where("service_categories.name = ?", category)
	}

	var total int64
	query.Count(&total)

	var services []models.Service
	if err := query.Preload("Category").
		Order("services.created_at desc").
		Offset((page - 1) * publicPageSize).Limit(publicPageSize).
		Find(&services).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch services!", nil)
	}

	// Filter options are the full category set, not just those with items
	var categories []string
	h.DB.Model(&models.ServiceCategory{}).Order("name").Pluck("name", &categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Services fetched successfully!", fiber.Map{
		"services":          services,
		"categories":        categories,
		"selected_category": category,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": publicPageSize,
		},
	})
}

// ServicesData returns a flat feed of all active services for client-side
// filtering
func (h *Handler) ServicesData(c *fiber.Ctx) error {
	var services []models.Service
	if err := h.DB.Preload("Category").Where("is_active = ?", true).Find(&services).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch services!", nil)
	}

	var categories []models.ServiceCategory
	h.DB.Order("name").Find(&categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Services fetched successfully!", fiber.Map{
		"services":   services,
		"categories": categories,
	})
}

// GetService returns one active service
func (h *Handler) GetService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid service id!", nil)
	}

	var service models.Service
	if err := h.DB.Preload("Category").Where("id = ? AND is_active = ?", id, true).First(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service fetched successfully!", service)
}
