package utils

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm/clause"
)

func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// CollectCourseStats loads headcount and current price per course. Headcount
// comes from the enrollment join table, price from the course row, so a price
// change retroactively moves revenue figures.
func CollectCourseStats() ([]CourseStat, error) {
	db := database.Database.Db

	var stats []CourseStat
	err := db.Model(&courseModels.Course{}).
		Select("courses.id as course_id, courses.title, courses.price, COUNT(enrollments.id) as students").
		Joins("LEFT JOIN enrollments ON enrollments.course_id = courses.id AND enrollments.deleted_at IS NULL").
		Where("courses.is_deleted = ?", false).
		Group("courses.id, courses.title, courses.price").
		Order("courses.id asc").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// snapshotPlatformStats writes (or rewrites) today's platform stats row.
func snapshotPlatformStats() {
	db := database.Database.Db

	stats, err := CollectCourseStats()
	if err != nil {
		logScheduler("failed to collect course stats: " + err.Error())
		return
	}

	var totalUsers, totalCourses, totalEnrollments int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Enrollment{}).Count(&totalEnrollments)

	snapshot := models.PlatformStatsSnapshot{
		Date:              now.BeginningOfDay(),
		TotalUsers:        totalUsers,
		TotalCourses:      totalCourses,
		TotalEnrollments:  totalEnrollments,
		TotalRevenue:      TotalRevenue(stats),
		AverageEnrollment: AverageEnrollment(stats),
	}

	// Re-running on the same day overwrites that day's row.
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_users", "total_courses", "total_enrollments",
			"total_revenue", "average_enrollment", "updated_at",
		}),
	}).Create(&snapshot).Error
	if err != nil {
		logScheduler("failed to store snapshot: " + err.Error())
		return
	}

	logScheduler("platform stats snapshot stored")
}

// StartStatsScheduler runs the daily platform stats snapshot job.
func StartStatsScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.StatsCronSpec, snapshotPlatformStats)
	if err != nil {
		log.Fatalf("Failed to schedule stats snapshot: %v", err)
	}

	c.Start()
	logScheduler("scheduler started with spec " + config.AppConfig.StatsCronSpec)
	return c
}
