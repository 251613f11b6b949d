package adminController

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

// Dashboard returns entity counts and the latest inquiries for the admin
// landing page
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	var (
		services  int64
		projects  int64
		materials int64
		videos    int64
		posts     int64
		users     int64
		inquiries int64
	)

	h.DB.Model(&models.Service{}).Count(&services)
	h.DB.Model(&models.Project{}).Count(&projects)
	h.DB.Model(&models.StudyMaterial{}).Count(&materials)
	h.DB.Model(&models.YouTubeVideo{}).Count(&videos)
	h.DB.Model(&models.BlogPost{}).Count(&posts)
	h.DB.Model(&models.User{}).Count(&users)
	h.DB.Model(&models.Inquiry{}).Where("status = ?", models.InquiryNew).Count(&inquiries)

	var projectDownloads, materialDownloads int64
	h.DB.Model(&models.Project{}).Select("COALESCE(SUM(download_count), 0)").Scan(&projectDownloads)
	h.DB.Model(&models.StudyMaterial{}).Select("COALESCE(SUM(download_count), 0)").Scan(&materialDownloads)

	var latestInquiries []models.Inquiry
	h.DB.Order("created_at desc").Limit(5).Find(&latestInquiries)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"counts": fiber.Map{
			"services":        services,
			"projects":        projects,
			"study_materials": materials,
			"videos":          videos,
			"blog_posts":      posts,
			"users":           users,
			"new_inquiries":   inquiries,
		},
		"downloads": fiber.Map{
			"projects":        projectDownloads,
			"study_materials": materialDownloads,
			"total":           projectDownloads + materialDownloads,
		},
		"latest_inquiries": latestInquiries,
	})
}
