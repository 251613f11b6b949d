package videosRoutes

import (
	videoController "folio/controllers/videos"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVideosRoutes(app *fiber.App, db *gorm.DB) {
	handler := videoController.NewHandler(db)

	videoGroup := app.Group("/videos")

	videoGroup.Get("/", handler.ListVideos)
	videoGroup.Get("/:id", handler.GetVideo)
}
