package courseValidator

import (
	"strconv"
	"strings"

	controllers "lms/controllers/course"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a positive integer route parameter into c.Locals under key.
func paramID(c *fiber.Ctx, param, key string) (int, error) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, param+" is required!")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+param+"!")
	}
	c.Locals(key, id)
	return id, nil
}

func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int   `json:"page"`
			Limit *int   `json:"limit"`
			Level string `json:"level"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Level != "" && !courseModels.ValidLevel(reqData.Level) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"level": "Level must be beginner, intermediate or advanced!",
			})
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price can not be negative!"
		}
		if reqData.Level != "" && !courseModels.ValidLevel(reqData.Level) {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}
		for i, l := range reqData.Lessons {
			if strings.TrimSpace(l.Title) == "" {
				errors["lessons"] = "Lesson " + strconv.Itoa(i+1) + " is missing a title!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(controllers.UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title can not be empty!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price can not be negative!"
		}
		if reqData.Level != nil && !courseModels.ValidLevel(*reqData.Level) {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}

func DeleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return c.Next()
	}
}

func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(controllers.LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedAddLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		if _, err := paramID(c, "lesson_id", "lessonID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(controllers.LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedUpdateLesson", reqData)
		return c.Next()
	}
}

func DeleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		if _, err := paramID(c, "lesson_id", "lessonID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return c.Next()
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := paramID(c, "id", "courseID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		if _, err := paramID(c, "lesson_id", "lessonID"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(controllers.CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Questions) == 0 {
			errors["questions"] = "A quiz needs at least one question!"
		}
		for i, q := range reqData.Questions {
			pos := strconv.Itoa(i + 1)
			if strings.TrimSpace(q.Question) == "" {
				errors["questions"] = "Question " + pos + " is missing its text!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Question " + pos + " needs at least two options!"
				break
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				errors["questions"] = "Question " + pos + " has an out-of-range correct answer!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateQuiz", reqData)
		return c.Next()
	}
}
