package authRoutes

import (
	"time"

	authController "folio/controllers/auth"
	"folio/middleware"
	authValidator "folio/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	handler := authController.NewHandler(db)

	authGroup := app.Group("/auth")

	loginLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
	})

	authGroup.Post("/login", loginLimiter, authValidator.Login(), handler.Login)
	authGroup.Get("/me", middleware.Protected, handler.Me)
}
