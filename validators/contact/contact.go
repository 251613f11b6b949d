package contactValidator

import (
	"folio/middleware"
	"folio/validators"

	"github.com/gofiber/fiber/v2"
)

// InquiryRequest is a contact form submission
type InquiryRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=50"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required,max=100"`
	Message string `json:"message" form:"message" validate:"required,min=10"`
}

func Inquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InquiryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInquiry", reqData)
		return c.Next()
	}
}

// InquiryStatusRequest updates an inquiry's workflow status
type InquiryStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=new contacted closed"`
}

func InquiryStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InquiryStatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInquiryStatus", reqData)
		return c.Next()
	}
}
