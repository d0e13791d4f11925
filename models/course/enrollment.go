package course

import "gorm.io/gorm"

// Enrollment links a user to a course. The composite unique index makes
// enrollment idempotent per (user, course) pair: a concurrent second writer
// is rejected by the database rather than silently merged.
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course;index"`
	Status   string `json:"status" gorm:"default:'ENROLLED'"`
}
