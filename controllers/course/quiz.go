package controllers

import (
	"encoding/json"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetLessonQuiz returns the quiz attached to a lesson with the answer key
// stripped. The caller must be enrolled in the owning course.
func GetLessonQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("lesson_id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this lesson!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("sequence_order asc").Find(&questions)

	type QuestionView struct {
		ID            uint     `json:"id"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		SequenceOrder int      `json:"sequence_order"`
	}

	view := make([]QuestionView, len(questions))
	for i, q := range questions {
		var options []string
		if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
			options = nil
		}
		// Correct answer and explanation stay server-side until submission.
		view[i] = QuestionView{
			ID:            q.ID,
			Question:      q.Question,
			Options:       options,
			SequenceOrder: q.SequenceOrder,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz_id":   quiz.ID,
		"lesson_id": quiz.LessonID,
		"questions": view,
	})
}

// SubmitQuiz scores a learner's selections against the quiz's answer key and
// stores the attempt. Selections are matched to questions by position;
// missing positions count as incorrect.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		Selected []int `json:"selected"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, quiz.CourseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var questions []courseModels.QuizQuestion
	if err := database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("sequence_order asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	answerKey := make([]int, len(questions))
	for i, q := range questions {
		answerKey[i] = q.CorrectAnswer
	}

	score, total := utils.ScoreQuiz(answerKey, reqData.Selected)
	passed := utils.QuizPassed(score, total)

	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quiz.ID).Count(&attemptCount)

	selectedJSON, _ := json.Marshal(reqData.Selected)

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		QuizID:        quiz.ID,
		Selected:      string(selectedJSON),
		Score:         score,
		Total:         total,
		Passed:        passed,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"score":      score,
		"total":      total,
		"percentage": utils.QuizPercent(score, total),
		"passed":     passed,
		"attempt":    attempt,
	})
}
