package videoValidator

import (
	"strings"

	"folio/middleware"
	"folio/utils"

	"github.com/gofiber/fiber/v2"
)

// VideoRequest carries the writable fields of a YouTube video entry. The
// admin supplies a full URL; the extracted id is what gets stored.
type VideoRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	VideoURL    string `json:"video_url" form:"video_url"`
	CategoryID  *uint  `json:"category_id" form:"category_id"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required!"
		} else if _, ok := utils.ExtractYouTubeID(reqData.VideoURL); !ok {
			errors["video_url"] = "Invalid YouTube URL. Please provide a valid link!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

func UpdateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// URL only validated when the admin is replacing it
		if url := strings.TrimSpace(reqData.VideoURL); url != "" {
			if _, ok := utils.ExtractYouTubeID(url); !ok {
				errors["video_url"] = "Invalid YouTube URL. Please provide a valid link!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}
