package models

import (
	"time"

	"gorm.io/gorm"
)

// PlatformStatsSnapshot is one daily row written by the stats scheduler.
// Revenue and average enrollment are recomputed from live data at snapshot
// time, so a price change shifts historical totals as well.
type PlatformStatsSnapshot struct {
	gorm.Model
	Date              time.Time `json:"date" gorm:"uniqueIndex;not null"` // start of day
	TotalUsers        int64     `json:"total_users"`
	TotalCourses      int64     `json:"total_courses"`
	TotalEnrollments  int64     `json:"total_enrollments"`
	TotalRevenue      float64   `json:"total_revenue"`
	AverageEnrollment float64   `json:"average_enrollment"`
}
