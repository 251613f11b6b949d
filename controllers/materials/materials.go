package materialController

import (
	"path/filepath"

	"folio/config"
	"folio/downloads"
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

const publicPageSize = 100

// ListMaterials returns active study materials, optionally filtered by
// category name
func (h *Handler) ListMaterials(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	category := c.Query("category", "All")

	query := h.DB.Model(&models.StudyMaterial{}).Where("study_materials.is_active = ?", true)
	if category != "" && category != "All" {
		query = query.Joins("JOIN study_material_categories ON study_material_categories.id = study_materials.category_id").
			Where("study_material_categories.name = ?", category)
	}

	var total int64
	query.Count(&total)

	var materials []models.StudyMaterial
	if err := query.Preload("Category").Order("study_materials.created_at desc").
		Offset((page - 1) * publicPageSize).Limit(publicPageSize).Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study materials!", nil)
	}

	var categories []string
	h.DB.Model(&models.StudyMaterialCategory{}).Order("name").Pluck("name", &categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study materials fetched successfully!", fiber.Map{
		"materials":  materials,
		"categories": categories,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": publicPageSize,
		},
	})
}

// GetMaterial returns a single active study material
func (h *Handler) GetMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	var material models.StudyMaterial
	if err := h.DB.Preload("Category").Where("is_active = ?", true).First(&material, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study material fetched successfully!", material)
}

// DownloadMaterial resolves the download source for a study material and
// records the download. Paid materials are always rejected.
func (h *Handler) DownloadMaterial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	var material models.StudyMaterial
	if err := h.DB.First(&material, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found!", nil)
	}

	outcome := downloads.ResolveMaterial(&material, config.AppConfig.StaticDir)
	if outcome.Kind == downloads.KindRejected {
		status, message := downloads.RejectionResponse(outcome.Reason)
		return middleware.JsonResponse(c, status, false, message, nil)
	}

	var userID *uint
	if id, ok := c.Locals("userId").(uint); ok {
		userID = &id
	}

	displayName := material.Title
	if outcome.Kind == downloads.KindServeFile {
		displayName = filepath.Base(material.FilePath)
	}
	if err := downloads.Record(h.DB, models.ItemTypeStudyMaterial, material.ID, displayName, userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record download!", nil)
	}

	if outcome.Kind == downloads.KindRedirect {
		return c.Redirect(outcome.URL, fiber.StatusFound)
	}
	return c.Download(outcome.Path, filepath.Base(outcome.Path))
}
