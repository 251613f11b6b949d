package contactController

import (
	"folio/middleware"
	"folio/models"
	"folio/utils"
	contactValidator "folio/validators/contact"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// SubmitInquiry stores a contact form submission and notifies the support
// address in the background
func (h *Handler) SubmitInquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInquiry").(*contactValidator.InquiryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	inquiry := models.Inquiry{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
		Status:  models.InquiryNew,
	}

	if err := h.DB.Create(&inquiry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit inquiry!", nil)
	}

	go utils.SendInquiryNotification(&inquiry)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thank you for reaching out! We will get back to you soon.", inquiry)
}
