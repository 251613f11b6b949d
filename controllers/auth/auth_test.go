package authController

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/config"
	"folio/middleware"
	"folio/models"
	authValidator "folio/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	app.Post("/auth/login", authValidator.Login(), handler.Login)
	app.Get("/auth/me", middleware.Protected, handler.Me)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     strings.Split(email, "@")[0],
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     active,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestLoginReturnsToken(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin@example.com", "s3cretpass", true)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"s3cretpass"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Status)
	assert.NotEmpty(t, out.Data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin@example.com", "s3cretpass", true)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginInactiveUser(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "gone@example.com", "s3cretpass", false)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"gone@example.com","password":"s3cretpass"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginValidationFailure(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "admin@example.com", "s3cretpass", true)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
