package contactController

import (
	"folio/middleware"
	"folio/models"
	contactValidator "folio/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// AdminListInquiries lists inquiries newest first, optionally filtered by
// status
func (h *Handler) AdminListInquiries(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := 10
	status := c.Query("status")

	query := h.DB.Model(&models.Inquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var inquiries []models.Inquiry
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&inquiries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inquiries!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiries fetched successfully!", fiber.Map{
		"inquiries": inquiries,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminUpdateInquiryStatus moves an inquiry between new, contacted and
// closed
func (h *Handler) AdminUpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid inquiry id!", nil)
	}

	var inquiry models.Inquiry
	if err := h.DB.First(&inquiry, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Inquiry not found!", nil)
	}

	reqData, ok := c.Locals("validatedInquiryStatus").(*contactValidator.InquiryStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	inquiry.Status = reqData.Status
	if err := h.DB.Save(&inquiry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update inquiry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiry updated successfully!", inquiry)
}

// AdminDeleteInquiry permanently removes an inquiry
func (h *Handler) AdminDeleteInquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid inquiry id!", nil)
	}

	var inquiry models.Inquiry
	if err := h.DB.First(&inquiry, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Inquiry not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&inquiry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete inquiry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiry deleted successfully!", nil)
}
