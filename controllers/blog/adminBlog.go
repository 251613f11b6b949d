package blogController

import (
	"fmt"

	"folio/middleware"
	"folio/models"
	"folio/utils"
	blogValidator "folio/validators/blog"
	categoryValidator "folio/validators/category"

	"github.com/gofiber/fiber/v2"
)

// AdminListPosts lists all blog posts, active or not
func (h *Handler) AdminListPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := 10

	var total int64
	h.DB.Model(&models.BlogPost{}).Count(&total)

	var posts []models.BlogPost
	if err := h.DB.Preload("Category").Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully!", fiber.Map{
		"posts": posts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminCreatePost creates a blog post with an optional thumbnail upload
func (h *Handler) AdminCreatePost(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlogPost").(*blogValidator.BlogRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CategoryID != nil {
		var category models.BlogCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	post := models.BlogPost{
		Title:      reqData.Title,
		Content:    reqData.Content,
		CategoryID: reqData.CategoryID,
		IsActive:   true,
	}
	if reqData.ReadTime != "" {
		post.ReadTime = reqData.ReadTime
	}
	if reqData.IsActive != nil {
		post.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("thumbnail"); err == nil {
		thumbPath, err := utils.SaveUploadedFile(file, "blog_thumbs")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
		post.Thumbnail = thumbPath
	}

	if err := h.DB.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Blog post created successfully!", post)
}

// AdminUpdatePost updates provided fields only
func (h *Handler) AdminUpdatePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid post id!", nil)
	}

	var post models.BlogPost
	if err := h.DB.First(&post, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found!", nil)
	}

	reqData, ok := c.Locals("validatedBlogPost").(*blogValidator.BlogRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		post.Title = reqData.Title
	}
	if reqData.Content != "" {
		post.Content = reqData.Content
	}
	if reqData.CategoryID != nil {
		var category models.BlogCategory
		if err := h.DB.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		post.CategoryID = reqData.CategoryID
	}
	if reqData.ReadTime != "" {
		post.ReadTime = reqData.ReadTime
	}
	if reqData.IsActive != nil {
		post.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("thumbnail"); err == nil {
		thumbPath, err := utils.SaveUploadedFile(file, "blog_thumbs")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
		post.Thumbnail = thumbPath
	}

	if err := h.DB.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post updated successfully!", post)
}

// AdminDeletePost permanently removes a blog post
func (h *Handler) AdminDeletePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid post id!", nil)
	}

	var post models.BlogPost
	if err := h.DB.First(&post, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post deleted successfully!", nil)
}

// AdminListCategories lists blog categories
func (h *Handler) AdminListCategories(c *fiber.Ctx) error {
	var categories []models.BlogCategory
	if err := h.DB.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// AdminCreateCategory creates a blog category
func (h *Handler) AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ?", reqData.Name).First(&models.BlogCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.BlogCategory{Name: reqData.Name, Description: reqData.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateCategory renames a blog category
func (h *Handler) AdminUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.BlogCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.DB.Where("name = ? AND id <> ?", reqData.Name, category.ID).First(&models.BlogCategory{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := h.DB.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory removes a blog category unless posts still
// reference it
func (h *Handler) AdminDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.BlogCategory
	if err := h.DB.First(&category, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var count int64
	h.DB.Model(&models.BlogPost{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		msg := fmt.Sprintf("Cannot delete category %q as it contains blog posts. Move them first.", category.Name)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, msg, nil)
	}

	if err := h.DB.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
