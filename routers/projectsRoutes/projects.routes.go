package projectsRoutes

import (
	projectController "folio/controllers/projects"
	"folio/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProjectsRoutes(app *fiber.App, db *gorm.DB) {
	handler := projectController.NewHandler(db)

	projectGroup := app.Group("/projects")

	projectGroup.Get("/", handler.ListProjects)
	projectGroup.Get("/:id", handler.GetProject)
	projectGroup.Get("/:id/download", middleware.OptionalAuth, handler.DownloadProject)
}
