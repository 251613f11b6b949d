package blogController

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

// ListPosts returns all active blog posts, newest first, optionally
// filtered by category name
func (h *Handler) ListPosts(c *fiber.Ctx) error {
	category := c.Query("category", "All")

	query := h.DB.Model(&models.BlogPost{}).Where("blog_posts.is_active = ?", true)
	if category != "" && category != "All" {
		query = query.Joins("JOIN blog_categories ON blog_categories.id = blog_posts.category_id").
			Where("blog_categories.name = ?", category)
	}

	var posts []models.BlogPost
	if err := query.Preload("Category").Order("blog_posts.created_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
	}

	var categories []string
	h.DB.Model(&models.BlogCategory{}).Order("name").Pluck("name", &categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully!", fiber.Map{
		"posts":      posts,
		"categories": categories,
	})
}

// GetPost returns a single active blog post
func (h *Handler) GetPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid post id!", nil)
	}

	var post models.BlogPost
	if err := h.DB.Preload("Category").Where("is_active = ?", true).First(&post, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post fetched successfully!", post)
}
