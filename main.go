package main

import (
	"log"

	"folio/config"
	"folio/database"
	adminRoutes "folio/routers/adminRoutes"
	authRoutes "folio/routers/authRoutes"
	blogRoutes "folio/routers/blogRoutes"
	materialsRoutes "folio/routers/materialsRoutes"
	pagesRoutes "folio/routers/pagesRoutes"
	projectsRoutes "folio/routers/projectsRoutes"
	servicesRoutes "folio/routers/servicesRoutes"
	videosRoutes "folio/routers/videosRoutes"
	"folio/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files from the static folder
	app.Static("/", config.AppConfig.StaticDir)

	authRoutes.SetupAuthRoutes(app, db)
	pagesRoutes.SetupPagesRoutes(app, db)
	servicesRoutes.SetupServicesRoutes(app, db)
	projectsRoutes.SetupProjectsRoutes(app, db)
	materialsRoutes.SetupMaterialsRoutes(app, db)
	videosRoutes.SetupVideosRoutes(app, db)
	blogRoutes.SetupBlogRoutes(app, db)
	adminRoutes.SetupAdminRoutes(app, db)

	cronJob := utils.StartStatsScheduler(db)
	defer cronJob.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
