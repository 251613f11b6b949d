package materialsRoutes

import (
	materialController "folio/controllers/materials"
	"folio/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMaterialsRoutes(app *fiber.App, db *gorm.DB) {
	handler := materialController.NewHandler(db)

	materialGroup := app.Group("/study-materials")

	materialGroup.Get("/", handler.ListMaterials)
	materialGroup.Get("/:id", handler.GetMaterial)
	materialGroup.Get("/:id/download", middleware.OptionalAuth, handler.DownloadMaterial)
}
