package pagesRoutes

import (
	"time"

	contactController "folio/controllers/contact"
	pagesController "folio/controllers/pages"
	contactValidator "folio/validators/contact"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func SetupPagesRoutes(app *fiber.App, db *gorm.DB) {
	pages := pagesController.NewHandler(db)
	contact := contactController.NewHandler(db)

	app.Get("/home", pages.Home)
	app.Get("/about", pages.About)

	contactLimiter := limiter.New(limiter.Config{
		Max:        2,
		Expiration: time.Minute,
	})

	app.Post("/contact", contactLimiter, contactValidator.Inquiry(), contact.SubmitInquiry)
}
