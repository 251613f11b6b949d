package serviceValidator

import (
	"strings"

	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

// ServiceRequest carries the writable fields of a service. Pointer fields
// distinguish "not sent" from zero values on update.
type ServiceRequest struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
	CategoryID  *uint    `json:"category_id" form:"category_id"`
	IsActive    *bool    `json:"is_active" form:"is_active"`
}

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ServiceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateService(reqData, true)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedService", reqData)
		return c.Next()
	}
}

func UpdateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ServiceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateService(reqData, false)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedService", reqData)
		return c.Next()
	}
}

func validateService(reqData *ServiceRequest, required bool) map[string]string {
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
	} else if description != "" && len(description) < 5 {
		errors["description"] = "Description must be at least 5 characters long!"
	}

	if reqData.Price != nil && *reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}

	return errors
}
