package adminRoutes

import (
	adminController "folio/controllers/admin"
	blogController "folio/controllers/blog"
	contactController "folio/controllers/contact"
	materialController "folio/controllers/materials"
	projectController "folio/controllers/projects"
	serviceController "folio/controllers/services"
	videoController "folio/controllers/videos"
	"folio/middleware"
	adminValidator "folio/validators/admin"
	blogValidator "folio/validators/blog"
	categoryValidator "folio/validators/category"
	contactValidator "folio/validators/contact"
	materialValidator "folio/validators/materials"
	projectValidator "folio/validators/projects"
	serviceValidator "folio/validators/services"
	videoValidator "folio/validators/videos"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminRoutes wires the whole admin surface behind the JWT and admin
// role checks
func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	admin := adminController.NewHandler(db)
	services := serviceController.NewHandler(db)
	projects := projectController.NewHandler(db)
	materials := materialController.NewHandler(db)
	videos := videoController.NewHandler(db)
	blog := blogController.NewHandler(db)
	contact := contactController.NewHandler(db)

	adminGroup := app.Group("/admin", middleware.Protected, middleware.AdminOnly(db))

	adminGroup.Get("/dashboard", admin.Dashboard)

	// users
	adminGroup.Get("/users", admin.AdminListUsers)
	adminGroup.Post("/users", adminValidator.CreateUser(), admin.AdminCreateUser)
	adminGroup.Patch("/users/:id/toggle-active", admin.AdminToggleUserActive)
	adminGroup.Delete("/users/:id", admin.AdminDeleteUser)

	// services
	adminGroup.Get("/services", services.AdminListServices)
	adminGroup.Post("/services", serviceValidator.CreateService(), services.AdminCreateService)
	adminGroup.Put("/services/:id", serviceValidator.UpdateService(), services.AdminUpdateService)
	adminGroup.Delete("/services/:id", services.AdminDeleteService)
	adminGroup.Get("/service-categories", services.AdminListCategories)
	adminGroup.Post("/service-categories", categoryValidator.Category(), services.AdminCreateCategory)
	adminGroup.Put("/service-categories/:id", categoryValidator.Category(), services.AdminUpdateCategory)
	adminGroup.Delete("/service-categories/:id", services.AdminDeleteCategory)

	// projects
	adminGroup.Get("/projects", projects.AdminListProjects)
	adminGroup.Post("/projects", projectValidator.CreateProject(), projects.AdminCreateProject)
	adminGroup.Put("/projects/:id", projectValidator.UpdateProject(), projects.AdminUpdateProject)
	adminGroup.Delete("/projects/:id", projects.AdminDeleteProject)
	adminGroup.Get("/project-categories", projects.AdminListCategories)
	adminGroup.Post("/project-categories", categoryValidator.Category(), projects.AdminCreateCategory)
	adminGroup.Put("/project-categories/:id", categoryValidator.Category(), projects.AdminUpdateCategory)
	adminGroup.Delete("/project-categories/:id", projects.AdminDeleteCategory)

	// study materials
	adminGroup.Get("/study-materials", materials.AdminListMaterials)
	adminGroup.Post("/study-materials", materialValidator.CreateMaterial(), materials.AdminCreateMaterial)
	adminGroup.Put("/study-materials/:id", materialValidator.UpdateMaterial(), materials.AdminUpdateMaterial)
	adminGroup.Delete("/study-materials/:id", materials.AdminDeleteMaterial)
	adminGroup.Get("/material-categories", materials.AdminListCategories)
	adminGroup.Post("/material-categories", categoryValidator.Category(), materials.AdminCreateCategory)
	adminGroup.Put("/material-categories/:id", categoryValidator.Category(), materials.AdminUpdateCategory)
	adminGroup.Delete("/material-categories/:id", materials.AdminDeleteCategory)

	// videos
	adminGroup.Get("/videos", videos.AdminListVideos)
	adminGroup.Post("/videos", videoValidator.CreateVideo(), videos.AdminCreateVideo)
	adminGroup.Put("/videos/:id", videoValidator.UpdateVideo(), videos.AdminUpdateVideo)
	adminGroup.Delete("/videos/:id", videos.AdminDeleteVideo)
	adminGroup.Get("/video-categories", videos.AdminListCategories)
	adminGroup.Post("/video-categories", categoryValidator.Category(), videos.AdminCreateCategory)
	adminGroup.Put("/video-categories/:id", categoryValidator.Category(), videos.AdminUpdateCategory)
	adminGroup.Delete("/video-categories/:id", videos.AdminDeleteCategory)

	// blog
	adminGroup.Get("/blog", blog.AdminListPosts)
	adminGroup.Post("/blog", blogValidator.CreateBlogPost(), blog.AdminCreatePost)
	adminGroup.Put("/blog/:id", blogValidator.UpdateBlogPost(), blog.AdminUpdatePost)
	adminGroup.Delete("/blog/:id", blog.AdminDeletePost)
	adminGroup.Get("/blog-categories", blog.AdminListCategories)
	adminGroup.Post("/blog-categories", categoryValidator.Category(), blog.AdminCreateCategory)
	adminGroup.Put("/blog-categories/:id", categoryValidator.Category(), blog.AdminUpdateCategory)
	adminGroup.Delete("/blog-categories/:id", blog.AdminDeleteCategory)

	// inquiries
	adminGroup.Get("/inquiries", contact.AdminListInquiries)
	adminGroup.Patch("/inquiries/:id", contactValidator.InquiryStatus(), contact.AdminUpdateInquiryStatus)
	adminGroup.Delete("/inquiries/:id", contact.AdminDeleteInquiry)

	// page content
	adminGroup.Get("/content/home", admin.AdminGetHomeContent)
	adminGroup.Put("/content/home", admin.AdminUpdateHomeContent)
	adminGroup.Get("/content/about", admin.AdminGetAboutContent)
	adminGroup.Put("/content/about", admin.AdminUpdateAboutContent)

	// skills
	adminGroup.Get("/skills", admin.AdminListSkills)
	adminGroup.Post("/skills", adminValidator.Skill(true), admin.AdminCreateSkill)
	adminGroup.Put("/skills/:id", adminValidator.Skill(false), admin.AdminUpdateSkill)
	adminGroup.Delete("/skills/:id", admin.AdminDeleteSkill)
	adminGroup.Get("/skill-categories", admin.AdminListSkillCategories)
	adminGroup.Post("/skill-categories", categoryValidator.Category(), admin.AdminCreateSkillCategory)
	adminGroup.Put("/skill-categories/:id", categoryValidator.Category(), admin.AdminUpdateSkillCategory)
	adminGroup.Delete("/skill-categories/:id", admin.AdminDeleteSkillCategory)

	// team
	adminGroup.Get("/team", admin.AdminListTeam)
	adminGroup.Post("/team", adminValidator.TeamMember(true), admin.AdminCreateTeamMember)
	adminGroup.Put("/team/:id", adminValidator.TeamMember(false), admin.AdminUpdateTeamMember)
	adminGroup.Delete("/team/:id", admin.AdminDeleteTeamMember)
}
