package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "course_id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		if _, err := paramID(c, "lesson_id", "lessonID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(struct {
			TimeSpentSec int `json:"time_spent_sec"`
		})

		// The body is optional; elapsed time defaults to zero.
		if err := c.BodyParser(reqData); err == nil {
			if reqData.TimeSpentSec < 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"time_spent_sec": "Time spent can not be negative!",
				})
			}
			c.Locals("validatedLessonComplete", reqData)
		}

		return c.Next()
	}
}

func GetCourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return c.Next()
	}
}
