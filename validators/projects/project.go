package projectValidator

import (
	"strings"

	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// ProjectRequest carries the writable fields of a project. The file and
// image uploads travel beside it as multipart parts.
type ProjectRequest struct {
	Title           string `json:"title" form:"title"`
	Description     string `json:"description" form:"description"`
	CategoryID      *uint  `json:"category_id" form:"category_id"`
	GoogleDriveLink string `json:"google_drive_link" form:"google_drive_link"`
	GithubLink      string `json:"github_link" form:"github_link"`
	ProjectType     string `json:"project_type" form:"project_type"`
	IsActive        *bool  `json:"is_active" form:"is_active"`
}

func CreateProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProjectRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateProject(reqData, true)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

func UpdateProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProjectRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateProject(reqData, false)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

func validateProject(reqData *ProjectRequest, required bool) map[string]string {
	errors := make(map[string]string)

	title := strings.TrimSpace(reqData.Title)
	if required && title == "" {
		errors["title"] = "Title is required!"
	} else if title != "" && len(title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	description := strings.TrimSpace(reqData.Description)
	if required && description == "" {
		errors["description"] = "Description is required!"
	}

	if reqData.ProjectType != "" &&
		reqData.ProjectType != models.ProjectFree &&
		reqData.ProjectType != models.ProjectDemo {
		errors["project_type"] = "Project type must be free or demo!"
	}

	return errors
}
