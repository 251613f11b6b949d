package serviceController

import (
	"net/http/httptest"
	"strings"
	"testing"

	"folio/config"
	"folio/models"
	categoryValidator "folio/validators/category"
	serviceValidator "folio/validators/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAdminTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	require.NoError(t, db.AutoMigrate(&models.Service{}, &models.ServiceCategory{}, &models.User{}))

	admin := models.User{Username: "admin", Email: "admin@example.com", PasswordHash: "x", Role: models.RoleAdmin, IsActive: true}
	require.NoError(t, db.Create(&admin).Error)

	handler := NewHandler(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("adminUser", &admin)
		return c.Next()
	})
	app.Post("/admin/services", serviceValidator.CreateService(), handler.AdminCreateService)
	app.Post("/admin/service-categories", categoryValidator.Category(), handler.AdminCreateCategory)
	app.Put("/admin/service-categories/:id", categoryValidator.Category(), handler.AdminUpdateCategory)
	app.Delete("/admin/service-categories/:id", handler.AdminDeleteCategory)
	return app, db
}

func TestAdminCreateCategoryRejectsDuplicateName(t *testing.T) {
	app, db := newAdminTestApp(t)

	require.NoError(t, db.Create(&models.ServiceCategory{Name: "Consulting"}).Error)

	req := httptest.NewRequest("POST", "/admin/service-categories",
		strings.NewReader(`{"name":"Consulting","description":"dup"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAdminUpdateCategoryRejectsTakenName(t *testing.T) {
	app, db := newAdminTestApp(t)

	require.NoError(t, db.Create(&models.ServiceCategory{Name: "Consulting"}).Error)
	require.NoError(t, db.Create(&models.ServiceCategory{Name: "Training"}).Error)

	req := httptest.NewRequest("PUT", "/admin/service-categories/2",
		strings.NewReader(`{"name":"Consulting"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var reloaded models.ServiceCategory
	require.NoError(t, db.First(&reloaded, 2).Error)
	assert.Equal(t, "Training", reloaded.Name)
}

func TestAdminUpdateCategoryKeepsOwnName(t *testing.T) {
	app, db := newAdminTestApp(t)

	require.NoError(t, db.Create(&models.ServiceCategory{Name: "Consulting"}).Error)

	req := httptest.NewRequest("PUT", "/admin/service-categories/1",
		strings.NewReader(`{"name":"Consulting","description":"updated"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	app, db := newAdminTestApp(t)

	category := models.ServiceCategory{Name: "Consulting"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Service{Title: "Audit", CategoryID: &category.ID, IsActive: true}).Error)

	req := httptest.NewRequest("DELETE", "/admin/service-categories/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// the category must survive the refused delete
	var count int64
	db.Model(&models.ServiceCategory{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminDeleteCategoryAllowedWhenEmpty(t *testing.T) {
	app, db := newAdminTestApp(t)

	category := models.ServiceCategory{Name: "Consulting"}
	require.NoError(t, db.Create(&category).Error)

	req := httptest.NewRequest("DELETE", "/admin/service-categories/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.ServiceCategory{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminCreateServiceRejectsUnknownCategory(t *testing.T) {
	app, _ := newAdminTestApp(t)

	req := httptest.NewRequest("POST", "/admin/services",
		strings.NewReader(`{"title":"Audit","description":"security audit","category_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminCreateServiceAssignsCreator(t *testing.T) {
	app, db := newAdminTestApp(t)

	category := models.ServiceCategory{Name: "Consulting"}
	require.NoError(t, db.Create(&category).Error)

	req := httptest.NewRequest("POST", "/admin/services",
		strings.NewReader(`{"title":"Audit","description":"security audit","category_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var service models.Service
	require.NoError(t, db.First(&service).Error)
	require.NotNil(t, service.UserID)
	assert.Equal(t, uint(1), *service.UserID)
	assert.True(t, service.IsActive)
}
