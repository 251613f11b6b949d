package videoController

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio/config"
	"folio/models"
	videoValidator "folio/validators/videos"

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

	require.NoError(t, db.AutoMigrate(&models.YouTubeVideo{}, &models.YouTubeCategory{}))

	handler := NewHandler(db)
	app := fiber.New()
	app.Get("/videos", handler.ListVideos)
	app.Post("/admin/videos", videoValidator.CreateVideo(), handler.AdminCreateVideo)
	return app, db
}

func TestAdminCreateVideoExtractsID(t *testing.T) {
	app, db := newTestApp(t)

	req := httptest.NewRequest("POST", "/admin/videos",
		strings.NewReader(`{"title":"Intro","video_url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var video models.YouTubeVideo
	require.NoError(t, db.First(&video).Error)
	assert.Equal(t, "dQw4w9WgXcQ", video.VideoID)
	assert.Equal(t, "Intro", video.Title)
	assert.True(t, video.IsActive)
}

func TestAdminCreateVideoRejectsBadURL(t *testing.T) {
	app, db := newTestApp(t)

	req := httptest.NewRequest("POST", "/admin/videos",
		strings.NewReader(`{"title":"Broken","video_url":"https://example.com/clip"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	db.Model(&models.YouTubeVideo{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListVideosReturnsThreeNewestActiveAsFeatured(t *testing.T) {
	app, db := newTestApp(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"One", "Two", "Three", "Four"} {
		video := models.YouTubeVideo{Title: title, VideoID: "dQw4w9WgXcQ", IsActive: true}
		video.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(&video).Error)
	}
	hidden := models.YouTubeVideo{Title: "Hidden", VideoID: "dQw4w9WgXcQ", IsActive: false}
	hidden.CreatedAt = base.Add(24 * time.Hour)
	require.NoError(t, db.Create(&hidden).Error)

	req := httptest.NewRequest("GET", "/videos", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Data struct {
			Videos   []models.YouTubeVideo `json:"videos"`
			Featured []models.YouTubeVideo `json:"featured"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))

	require.Len(t, out.Data.Featured, 3)
	assert.Equal(t, "Four", out.Data.Featured[0].Title)
	assert.Equal(t, "Three", out.Data.Featured[1].Title)
	assert.Equal(t, "Two", out.Data.Featured[2].Title)

	// the inactive video appears nowhere, even though it is the newest
	assert.Len(t, out.Data.Videos, 4)
	for _, v := range append(out.Data.Videos, out.Data.Featured...) {
		assert.NotEqual(t, "Hidden", v.Title)
	}
}
