package blogRoutes

import (
	blogController "folio/controllers/blog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBlogRoutes(app *fiber.App, db *gorm.DB) {
	handler := blogController.NewHandler(db)

	blogGroup := app.Group("/blog")

	blogGroup.Get("/", handler.ListPosts)
	blogGroup.Get("/:id", handler.GetPost)
}
