package adminValidator

import (
	"strings"

	"folio/middleware"
	"folio/validators"

	"github.com/gofiber/fiber/v2"
)

// UserRequest creates an account from the admin panel; there is no public
// signup.
type UserRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin user"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// SkillRequest carries the writable fields of a home page skill
type SkillRequest struct {
	Name       string `json:"name" form:"name"`
	Category   string `json:"category" form:"category"`
	Percentage *int   `json:"percentage" form:"percentage"`
	IconText   string `json:"icon_text" form:"icon_text"`
	Color      string `json:"color" form:"color"`
	SortOrder  *int   `json:"sort_order" form:"sort_order"`
	IsActive   *bool  `json:"is_active" form:"is_active"`
}

func Skill(required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SkillRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if required && strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Percentage != nil && (*reqData.Percentage < 0 || *reqData.Percentage > 100) {
			errors["percentage"] = "Percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSkill", reqData)
		return c.Next()
	}
}

// TeamMemberRequest carries the writable fields of a team member. The
// image travels either as an upload part or as image_url.
type TeamMemberRequest struct {
	Name        string `json:"name" form:"name"`
	Position    string `json:"position" form:"position"`
	Bio         string `json:"bio" form:"bio"`
	ImageURL    string `json:"image_url" form:"image_url"`
	LinkedinURL string `json:"linkedin_url" form:"linkedin_url"`
	TwitterURL  string `json:"twitter_url" form:"twitter_url"`
	GithubURL   string `json:"github_url" form:"github_url"`
	DribbbleURL string `json:"dribbble_url" form:"dribbble_url"`
	BehanceURL  string `json:"behance_url" form:"behance_url"`
	SortOrder   *int   `json:"sort_order" form:"sort_order"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

func TeamMember(required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TeamMemberRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if required {
			if strings.TrimSpace(reqData.Name) == "" {
				errors["name"] = "Name is required!"
			}
			if strings.TrimSpace(reqData.Position) == "" {
				errors["position"] = "Position is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeamMember", reqData)
		return c.Next()
	}
}
