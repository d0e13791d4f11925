package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func GetLessonQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "course_id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		if _, err := paramID(c, "lesson_id", "lessonID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "quizID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(struct {
			Selected []int `json:"selected"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Shorter selections are allowed (unanswered questions score zero),
		// but a recorded selection must be a real option index.
		for _, s := range reqData.Selected {
			if s < 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"selected": "Answer selections must be non-negative option indexes!",
				})
			}
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}
