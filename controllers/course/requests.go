package controllers

// Request bodies shared between the course validators and controllers.

type LessonRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	VideoURL      string `json:"video_url"`
	SequenceOrder int    `json:"sequence_order"`
}

type CreateCourseRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Level        string          `json:"level"`
	Duration     string          `json:"duration"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Lessons      []LessonRequest `json:"lessons"`
}

type UpdateCourseRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Level        *string  `json:"level"`
	Duration     *string  `json:"duration"`
	ThumbnailURL *string  `json:"thumbnail_url"`
}

type QuizQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type CreateQuizRequest struct {
	Questions []QuizQuestionRequest `json:"questions"`
}
