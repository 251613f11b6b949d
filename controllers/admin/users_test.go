package adminController

import (
	"net/http/httptest"
	"strings"
	"testing"

	"folio/config"
	"folio/middleware"
	"folio/models"
	adminValidator "folio/validators/admin"

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

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	handler := NewHandler(db)
	app := fiber.New()
	adminGroup := app.Group("/admin", middleware.Protected, middleware.AdminOnly(db))
	adminGroup.Post("/users", adminValidator.CreateUser(), handler.AdminCreateUser)
	adminGroup.Patch("/users/:id/toggle-active", handler.AdminToggleUserActive)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return user, token
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "visitor", models.RoleUser)

	req := httptest.NewRequest("POST", "/admin/users",
		strings.NewReader(`{"username":"new","email":"new@example.com","password":"longenough","role":"user"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PATCH", "/admin/users/1/toggle-active", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCreateUserRejectsDuplicateEmail(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "boss", models.RoleAdmin)

	require.NoError(t, db.Create(&models.User{
		Username: "taken", Email: "taken@example.com", PasswordHash: "x", IsActive: true,
	}).Error)

	req := httptest.NewRequest("POST", "/admin/users",
		strings.NewReader(`{"username":"other","email":"taken@example.com","password":"longenough","role":"user"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAdminCreateUserStoresHashedPassword(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "boss", models.RoleAdmin)

	req := httptest.NewRequest("POST", "/admin/users",
		strings.NewReader(`{"username":"newbie","email":"newbie@example.com","password":"longenough","role":"user"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.User
	require.NoError(t, db.Where("username = ?", "newbie").First(&created).Error)
	assert.NotEqual(t, "longenough", created.PasswordHash)
	assert.True(t, created.IsActive)
}

func TestAdminCannotDeactivateSelf(t *testing.T) {
	app, db := newTestApp(t)
	admin, token := seedUser(t, db, "boss", models.RoleAdmin)

	req := httptest.NewRequest("PATCH", "/admin/users/1/toggle-active", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, admin.ID).Error)
	assert.True(t, reloaded.IsActive)
}

func TestAdminTogglesOtherUser(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "boss", models.RoleAdmin)
	other, _ := seedUser(t, db, "member", models.RoleUser)

	req := httptest.NewRequest("PATCH", "/admin/users/2/toggle-active", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, other.ID).Error)
	assert.False(t, reloaded.IsActive)
}
