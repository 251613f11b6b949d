package downloads

import (
	"testing"

	"folio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.StudyMaterial{}, &models.Download{}))
	return db
}

func TestRecordIncrementsCounterAndLogsForUser(t *testing.T) {
	db := newTestDB(t)

	project := models.Project{Title: "CLI Tool", IsActive: true}
	require.NoError(t, db.Create(&project).Error)

	userID := uint(7)
	require.NoError(t, Record(db, models.ItemTypeProject, project.ID, "CLI Tool", &userID))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(1), reloaded.DownloadCount)

	var logs []models.Download
	db.Find(&logs)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(7), logs[0].UserID)
	assert.Equal(t, models.ItemTypeProject, logs[0].ItemType)
	assert.Equal(t, project.ID, logs[0].ItemID)
	assert.Equal(t, "CLI Tool", logs[0].Filename)
}

func TestRecordAnonymousSkipsLog(t *testing.T) {
	db := newTestDB(t)

	material := models.StudyMaterial{Title: "Notes", MaterialType: models.MaterialFree, IsActive: true}
	require.NoError(t, db.Create(&material).Error)

	require.NoError(t, Record(db, models.ItemTypeStudyMaterial, material.ID, "Notes", nil))

	var reloaded models.StudyMaterial
	require.NoError(t, db.First(&reloaded, material.ID).Error)
	assert.Equal(t, int64(1), reloaded.DownloadCount)

	var count int64
	db.Model(&models.Download{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecordUnknownItem(t *testing.T) {
	db := newTestDB(t)

	err := Record(db, models.ItemTypeProject, 999, "missing", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.Download{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecordUnknownItemType(t *testing.T) {
	db := newTestDB(t)

	err := Record(db, "bogus", 1, "x", nil)
	assert.Error(t, err)
}

func TestRecordRepeatedDownloads(t *testing.T) {
	db := newTestDB(t)

	project := models.Project{Title: "Repeats", IsActive: true}
	require.NoError(t, db.Create(&project).Error)

	userID := uint(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, Record(db, models.ItemTypeProject, project.ID, "Repeats", &userID))
	}

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(3), reloaded.DownloadCount)

	var count int64
	db.Model(&models.Download{}).Count(&count)
	assert.Equal(t, int64(3), count)
}
