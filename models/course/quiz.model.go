package course

import "gorm.io/gorm"

// Quiz concludes a lesson. A lesson has at most one quiz.
type Quiz struct {
	gorm.Model
	LessonID  uint           `json:"lesson_id" gorm:"uniqueIndex;not null"`
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	Questions []QuizQuestion `json:"questions" gorm:"constraint:OnDelete:CASCADE"`
	IsDeleted bool           `gorm:"default:false"`
}

// QuizQuestion holds one question with its options and the index of the
// correct option.
type QuizQuestion struct {
	gorm.Model
	QuizID        uint   `json:"quiz_id" gorm:"index;not null"`
	Question      string `json:"question"`
	Options       string `json:"options" gorm:"type:text"` // JSON array of option texts
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation" gorm:"type:text"`
	SequenceOrder int    `json:"sequence_order" gorm:"default:0"`
	IsDeleted     bool   `gorm:"default:false"`
}

// QuizAttempt records a learner's submission for a quiz.
type QuizAttempt struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	QuizID        uint   `json:"quiz_id" gorm:"index;not null"`
	Selected      string `json:"selected"` // JSON array of selected option indexes, by question position
	Score         int    `json:"score"`
	Total         int    `json:"total"`
	Passed        bool   `json:"passed" gorm:"default:false"`
	AttemptNumber int    `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool   `gorm:"default:false"`
}
