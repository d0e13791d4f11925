package course

import "gorm.io/gorm"

// LessonCompletion records that a user finished a lesson. Rows are kept when
// the user unenrolls from the owning course; progress computation excludes
// completions whose course is no longer enrolled.
type LessonCompletion struct {
	gorm.Model
	UserID       uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	LessonID     uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	CourseID     uint `json:"course_id" gorm:"index;not null"`
	TimeSpentSec int  `json:"time_spent_sec" gorm:"default:0"`
}
