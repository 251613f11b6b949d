package materialController

import (
	"net/http/httptest"
	"strings"
	"testing"

	"folio/models"
	materialValidator "folio/validators/materials"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUpdateMaterialKeepsStoredPathsWithoutNewUpload(t *testing.T) {
	_, db := newTestApp(t)

	handler := NewHandler(db)
	app := fiber.New()
	app.Put("/admin/study-materials/:id", materialValidator.UpdateMaterial(), handler.AdminUpdateMaterial)

	material := models.StudyMaterial{
		Title:        "Original Notes",
		Description:  "desc",
		FilePath:     "uploads/materials/keep.pdf",
		Thumbnail:    "uploads/materials_thumbs/keep.png",
		MaterialType: models.MaterialFree,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&material).Error)

	req := httptest.NewRequest("PUT", "/admin/study-materials/1",
		strings.NewReader(`{"title":"Renamed Notes"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.StudyMaterial
	require.NoError(t, db.First(&reloaded, material.ID).Error)
	assert.Equal(t, "Renamed Notes", reloaded.Title)
	assert.Equal(t, "uploads/materials/keep.pdf", reloaded.FilePath)
	assert.Equal(t, "uploads/materials_thumbs/keep.png", reloaded.Thumbnail)
}
