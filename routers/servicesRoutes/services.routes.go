package servicesRoutes

import (
	serviceController "folio/controllers/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupServicesRoutes(app *fiber.App, db *gorm.DB) {
	handler := serviceController.NewHandler(db)

	serviceGroup := app.Group("/services")

	serviceGroup.Get("/", handler.ListServices)
	serviceGroup.Get("/data", handler.ServicesData)
	serviceGroup.Get("/:id", handler.GetService)
}
