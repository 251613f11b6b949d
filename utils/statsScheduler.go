package utils

import (
	"log"
	"strconv"
	"time"

	"folio/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func logStats(message string) {
	log.Printf("[STATS %s] %s", time.Now().Format(time.RFC3339), message)
}

// logDailyDownloadStats writes a one-line summary of download activity
func logDailyDownloadStats(db *gorm.DB) {
	var projectTotal, materialTotal int64
	db.Model(&models.Project{}).Select("COALESCE(SUM(download_count), 0)").Scan(&projectTotal)
	db.Model(&models.StudyMaterial{}).Select("COALESCE(SUM(download_count), 0)").Scan(&materialTotal)

	var trackedToday int64
	since := time.Now().Add(-24 * time.Hour)
	db.Model(&models.Download{}).Where("created_at >= ?", since).Count(&trackedToday)

	logStats("project downloads total=" + strconv.FormatInt(projectTotal, 10) +
		" material downloads total=" + strconv.FormatInt(materialTotal, 10) +
		" tracked last 24h=" + strconv.FormatInt(trackedToday, 10))
}

// StartStatsScheduler runs the daily download summary at midnight
func StartStatsScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", func() {
		logDailyDownloadStats(db)
	})
	if err != nil {
		log.Printf("Failed to register stats job: %v", err)
		return c
	}
	c.Start()
	logStats("Daily download stats job scheduled")
	return c
}
