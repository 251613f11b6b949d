package projectController

import (
	"path/filepath"

	"folio/config"
	"folio/downloads"
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

// ListProjects returns active projects, optionally filtered by category name
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	category := c.Query("category", "All")

	query := h.DB.Model(&models.Project{}).Where("projects.is_active = ?", true)
	if category != "" && category != "All" {
		query = query.Joins("JOIN project_categories ON project_categories.id = projects.category_id").
			Where("project_categories.name = ?", category)
	}

	var total int64
	query.Count(&total)

	var projects []models.Project
	if err := query.Preload("Category").
		Order("projects.created_at desc").
		Offset((page - 1) * publicPageSize).Limit(publicPageSize).
		Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	var categories []string
	h.DB.Model(&models.ProjectCategory{}).Order("name").Pluck("name", &categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects":          projects,
		"categories":        categories,
		"selected_category": category,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": publicPageSize,
		},
	})
}

// GetProject returns one active project
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project id!", nil)
	}

	var project models.Project
	if err := h.DB.Preload("Category").Where("id = ? AND is_active = ?", id, true).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project fetched successfully!", project)
}

// DownloadProject resolves the best source for a project and serves or
// redirects to it. Non-rejected downloads bump the counter and, for
// logged-in visitors, leave a tracking row.
func (h *Handler) DownloadProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project id!", nil)
	}

	var project models.Project
	if err := h.DB.First(&project, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	outcome := downloads.ResolveProject(&project, config.AppConfig.StaticDir)
	if outcome.Kind == downloads.KindRejected {
		status, message := downloads.RejectionResponse(outcome.Reason)
		return middleware.JsonResponse(c, status, false, message, nil)
	}

	var userID *uint
	if id, ok := c.Locals("userId").(uint); ok {
		userID = &id
	}

	if err := downloads.Record(h.DB, models.ItemTypeProject, project.ID, project.Title, userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record download!", nil)
	}

	if outcome.Kind == downloads.KindRedirect {
		return c.Redirect(outcome.URL, fiber.StatusFound)
	}
	return c.Download(outcome.Path, filepath.Base(outcome.Path))
}
