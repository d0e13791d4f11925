package course

import "gorm.io/gorm"

// Course difficulty levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ValidLevel reports whether level is one of the known difficulty values.
func ValidLevel(level string) bool {
	return level == LevelBeginner || level == LevelIntermediate || level == LevelAdvanced
}

// Course represents a learning course. Lessons are owned by the course and
// have no lifecycle of their own.
type Course struct {
	gorm.Model
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	InstructorID     uint     `json:"instructor_id" gorm:"index"`
	Price            float64  `json:"price" gorm:"default:0"`
	Level            string   `json:"level" gorm:"default:'beginner'"`
	Duration         string   `json:"duration"` // free text, e.g. "6 weeks"
	ThumbnailURL     string   `json:"thumbnail_url"`
	EnrolledStudents int64    `json:"enrolled_students" gorm:"default:0"`
	Lessons          []Lesson `json:"lessons" gorm:"constraint:OnDelete:CASCADE"`
	IsDeleted        bool     `gorm:"default:false"`
}

// Lesson is a single unit of course content, ordered by SequenceOrder.
type Lesson struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"` // free text, e.g. "15 min"
	VideoURL      string `json:"video_url"`
	SequenceOrder int    `json:"sequence_order" gorm:"default:0"`
	IsDeleted     bool   `gorm:"default:false"`
}
