package blogValidator

import (
	"strings"

	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

// BlogRequest carries the writable fields of a blog post
type BlogRequest struct {
	Title      string `json:"title" form:"title"`
	Content    string `json:"content" form:"content"`
	CategoryID *uint  `json:"category_id" form:"category_id"`
	ReadTime   string `json:"read_time" form:"read_time"`
	IsActive   *bool  `json:"is_active" form:"is_active"`
}

func CreateBlogPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BlogRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogPost", reqData)
		return c.Next()
	}
}

func UpdateBlogPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BlogRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedBlogPost", reqData)
		return c.Next()
	}
}
