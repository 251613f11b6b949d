package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newContentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Project{}, &StudyMaterial{}, &Skill{}))
	return db
}

// A column default must never override an explicitly stored zero value:
// an item created inactive has to stay inactive.
func TestCreateInactiveProjectStaysInactive(t *testing.T) {
	db := newContentTestDB(t)

	project := Project{Title: "Draft", Description: "wip", IsActive: false}
	require.NoError(t, db.Create(&project).Error)

	var reloaded Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.False(t, reloaded.IsActive)
}

func TestCreateInactiveMaterialStaysInactive(t *testing.T) {
	db := newContentTestDB(t)

	material := StudyMaterial{Title: "Draft", Description: "wip", MaterialType: MaterialFree, IsActive: false}
	require.NoError(t, db.Create(&material).Error)

	var reloaded StudyMaterial
	require.NoError(t, db.First(&reloaded, material.ID).Error)
	assert.False(t, reloaded.IsActive)
}

func TestCreateSkillWithZeroPercentage(t *testing.T) {
	db := newContentTestDB(t)

	skill := Skill{Name: "Planning", Percentage: 0, IsActive: true}
	require.NoError(t, db.Create(&skill).Error)

	var reloaded Skill
	require.NoError(t, db.First(&reloaded, skill.ID).Error)
	assert.Equal(t, 0, reloaded.Percentage)
}
