package materialValidator

import (
	"strings"

	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// MaterialRequest carries the writable fields of a study material
type MaterialRequest struct {
	Title        string   `json:"title" form:"title"`
	Description  string   `json:"description" form:"description"`
	CategoryID   *uint    `json:"category_id" form:"category_id"`
	Price        *float64 `json:"price" form:"price"`
	DocURL       string   `json:"doc_url" form:"doc_url"`
	MaterialType string   `json:"material_type" form:"material_type"`
	IsActive     *bool    `json:"is_active" form:"is_active"`
}

func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateMaterial(reqData, true)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

func UpdateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateMaterial(reqData, false)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

func validateMaterial(reqData *MaterialRequest, required bool) map[string]string {
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

	if reqData.MaterialType != "" &&
		reqData.MaterialType != models.MaterialFree &&
		reqData.MaterialType != models.MaterialPaid {
		errors["material_type"] = "Material type must be free or paid!"
	}

	if reqData.Price != nil && *reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}

	return errors
}
