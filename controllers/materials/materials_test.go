package materialController

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"folio/config"
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.StaticDir = t.TempDir()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.StudyMaterial{}, &models.StudyMaterialCategory{}, &models.Download{},
	))

	handler := NewHandler(db)
	app := fiber.New()
	app.Get("/study-materials", handler.ListMaterials)
	app.Get("/study-materials/:id", handler.GetMaterial)
	app.Get("/study-materials/:id/download", middleware.OptionalAuth, handler.DownloadMaterial)
	return app, db
}

func TestDownloadPaidMaterialRejected(t *testing.T) {
	app, db := newTestApp(t)

	material := models.StudyMaterial{
		Title:        "Premium Notes",
		DocURL:       "https://docs.example.com/premium",
		MaterialType: models.MaterialPaid,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&material).Error)

	req := httptest.NewRequest("GET", "/study-materials/1/download", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)

	var reloaded models.StudyMaterial
	require.NoError(t, db.First(&reloaded, material.ID).Error)
	assert.Equal(t, int64(0), reloaded.DownloadCount)
}

func TestDownloadFreeMaterialRedirectsToDocURL(t *testing.T) {
	app, db := newTestApp(t)

	material := models.StudyMaterial{
		Title:        "Free Notes",
		DocURL:       "https://docs.example.com/free",
		MaterialType: models.MaterialFree,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&material).Error)

	req := httptest.NewRequest("GET", "/study-materials/1/download", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://docs.example.com/free", resp.Header.Get("Location"))

	var reloaded models.StudyMaterial
	require.NoError(t, db.First(&reloaded, material.ID).Error)
	assert.Equal(t, int64(1), reloaded.DownloadCount)
}

func TestListMaterialsFiltersByCategory(t *testing.T) {
	app, db := newTestApp(t)

	golang := models.StudyMaterialCategory{Name: "Go"}
	math := models.StudyMaterialCategory{Name: "Math"}
	require.NoError(t, db.Create(&golang).Error)
	require.NoError(t, db.Create(&math).Error)

	require.NoError(t, db.Create(&models.StudyMaterial{
		Title: "Go Basics", CategoryID: &golang.ID, MaterialType: models.MaterialFree, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.StudyMaterial{
		Title: "Calculus", CategoryID: &math.ID, MaterialType: models.MaterialFree, IsActive: true,
	}).Error)

	req := httptest.NewRequest("GET", "/study-materials?category=Go", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Data struct {
			Materials []models.StudyMaterial `json:"materials"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Data.Materials, 1)
	assert.Equal(t, "Go Basics", out.Data.Materials[0].Title)
}

func TestGetMaterialHidesInactive(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&models.StudyMaterial{
		Title: "Draft", MaterialType: models.MaterialFree, IsActive: false,
	}).Error)

	req := httptest.NewRequest("GET", "/study-materials/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
