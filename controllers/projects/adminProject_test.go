package projectController

import (
	"net/http/httptest"
	"strings"
	"testing"

	"folio/models"
	projectValidator "folio/validators/projects"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUpdateProjectKeepsStoredPathsWithoutNewUpload(t *testing.T) {
	_, db := newTestApp(t)

	handler := NewHandler(db)
	app := fiber.New()
	app.Put("/admin/projects/:id", projectValidator.UpdateProject(), handler.AdminUpdateProject)

	project := models.Project{
		Title:       "Original",
		Description: "desc",
		FilePath:    "uploads/project_files/keep.zip",
		ImageURL:    "uploads/projects/keep.png",
		IsActive:    true,
	}
	require.NoError(t, db.Create(&project).Error)

	req := httptest.NewRequest("PUT", "/admin/projects/1",
		strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, "Renamed", reloaded.Title)
	assert.Equal(t, "uploads/project_files/keep.zip", reloaded.FilePath)
	assert.Equal(t, "uploads/projects/keep.png", reloaded.ImageURL)
}
